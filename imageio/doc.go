// Package imageio converts between raster images and world.World
// point sets: a non-white pixel becomes a world point, cropped to its
// tight bounding box and translated to a zero-based origin.
//
// PNG, JPEG, and GIF are decoded via the standard library; BMP is
// decoded via golang.org/x/image/bmp, rounding out the same breadth of
// common raster formats the original image-backed pipeline supported.
package imageio
