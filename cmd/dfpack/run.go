package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kvantos/dfpack/config"
	"github.com/kvantos/dfpack/decompose"
	"github.com/kvantos/dfpack/grade"
	"github.com/kvantos/dfpack/imageio"
	"github.com/kvantos/dfpack/pack"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var threeD bool
	var outDir string

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Decompose an image and pack the result into a minimal bounding box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(args[0], configPath, threeD, outDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file (defaults applied if omitted)")
	cmd.Flags().BoolVar(&threeD, "3d", false, "treat the input as a 3D world rather than 2D")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory to write ranked results to")

	return cmd
}

func runPipeline(imagePath, configPath string, threeD bool, outDir string) error {
	runID := uuid.New().String()[:8]
	log := logrus.WithField("run_id", runID)

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if threeD {
		cfg.ThreeD = true
	}

	log.Infof("loading image %q (three_d=%v)", imagePath, cfg.ThreeD)
	w, err := imageio.LoadWorld(imagePath, cfg.ThreeD)
	if err != nil {
		return err
	}
	log.Infof("loaded world: %d points, %dx%dx%d bounds", w.NumPoints(), w.Width(), w.Height(), w.Depth())

	decomposer, err := decompose.New(w, cfg.PartSizePercentOfWorld, cfg.ThreeD)
	if err != nil {
		return err
	}
	log.Infof("decompose: part_size_percent_of_world=%d", cfg.PartSizePercentOfWorld)

	result, err := decomposer.Decompose()
	if err != nil {
		return err
	}
	log.Infof("decompose: found %d candidate solutions", len(result.Solutions))

	packer := pack.New(w, cfg.ThreeD)
	packResults := make([]pack.Result, len(result.Solutions))
	candidates := make([]grade.Candidate, len(result.Solutions))
	for i, sol := range result.Solutions {
		pr, err := packer.Pack(sol)
		if err != nil {
			return err
		}
		log.Infof("pack: solution=%d box=%dx%dx%d area=%v", i, pr.Width, pr.Height, pr.Depth, pr.Area)

		packResults[i] = pr
		candidates[i] = grade.Candidate{Area: pr.Area, PartCount: len(sol.Placements)}
	}

	graded, err := grade.Grade(candidates, cfg.BoundingBoxWeight, cfg.NumOfPartsWeight)
	if err != nil {
		return err
	}
	order := grade.Rank(graded)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("dfpack: creating output dir %q: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, fmt.Sprintf("dfpack-%s.json", runID))
	if err := writeRanked(outPath, order, result, packResults, graded); err != nil {
		return err
	}
	log.Infof("wrote %d ranked results to %s", len(order), outPath)

	return nil
}

// rankedResult is the JSON shape of one (decompose, pack) pair in
// ranked order.
type rankedResult struct {
	Rank       int                  `json:"rank"`
	Grade      float64              `json:"grade"`
	PartsCount decompose.PartsCount `json:"parts_count"`
	BoxWidth   int                  `json:"box_width"`
	BoxHeight  int                  `json:"box_height"`
	BoxDepth   int                  `json:"box_depth"`
	BoxArea    float64              `json:"box_area"`
}

func writeRanked(path string, order []int, result *decompose.Result, packResults []pack.Result, graded []grade.Result) error {
	gradeByIndex := make(map[int]float64, len(graded))
	for _, g := range graded {
		gradeByIndex[g.Index] = g.Grade
	}

	out := make([]rankedResult, len(order))
	for rank, idx := range order {
		out[rank] = rankedResult{
			Rank:       rank,
			Grade:      gradeByIndex[idx],
			PartsCount: result.Solutions[idx].PartsCount,
			BoxWidth:   packResults[idx].Width,
			BoxHeight:  packResults[idx].Height,
			BoxDepth:   packResults[idx].Depth,
			BoxArea:    packResults[idx].Area,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("dfpack: encoding results: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
