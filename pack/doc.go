// Package pack repacks an already-decomposed set of parts into the
// smallest bounding box that can hold them, by trying successively
// larger candidate boxes and solving an exact cover of each with a
// counted encoding (see encode.EncodePart): one mandatory identity
// column per part occurrence, forcing the solver to place exactly
// that many instances of each part, while box cells stay optional so
// not every cell of a (possibly oversized) candidate box need be
// covered.
package pack
