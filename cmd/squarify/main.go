// Command squarify is a small demo/debug harness around package dissect: it
// reads a polygon, drives dissect.BuildFrames, and dumps the resulting
// frame(s) to stdout as JSON. The interactive canvas that actually collects
// a polygon from a user and animates the frames is a host concern outside
// this module.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gerwien/dissect"
	"github.com/gerwien/dissect/point"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "squarify",
		Usage:     "Dissects a polygon into a square and prints the animation frames as JSON",
		UsageText: "squarify --point 0,0 --point 100,0 --point 0,100",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "point",
				Aliases: []string{"p"},
				Usage:   "a polygon vertex as \"x,y\"; repeat in order around the boundary",
			},
			&cli.StringFlag{
				Name:  "json",
				Usage: "path to a JSON file containing the polygon as [[x,y],...], instead of --point",
			},
			&cli.IntFlag{
				Name:     "frame",
				Usage:    "print only frame N, instead of every frame the pipeline produces",
				Value:    -1,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	poly, err := readPolygon(cmd)
	if err != nil {
		return err
	}

	seq := dissect.BuildFrames(poly)
	if frame := cmd.Int("frame"); frame >= 0 {
		f, err := seq.Get(int(frame))
		if err != nil {
			return fmt.Errorf("squarify: frame %d: %w", frame, err)
		}
		return printJSON(f)
	}
	return printJSON(allFrames(seq))
}

// allFrames drains seq to completion (or to its first failure) and returns
// every frame produced.
func allFrames(seq *dissect.FrameSequence) []dissect.Frame {
	var frames []dissect.Frame
	for i := 0; ; i++ {
		f, err := seq.Get(i)
		if err != nil {
			break
		}
		frames = append(frames, f)
	}
	return frames
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// readPolygon resolves the polygon from --json (if given) or the repeated
// --point flags otherwise.
func readPolygon(cmd *cli.Command) ([]point.Point, error) {
	if path := cmd.String("json"); path != "" {
		return readPolygonFile(path)
	}
	return parsePoints(cmd.StringSlice("point"))
}

func readPolygonFile(path string) ([]point.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("squarify: reading %s: %w", path, err)
	}
	var coords [][2]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil, fmt.Errorf("squarify: parsing %s: %w", path, err)
	}
	points := make([]point.Point, len(coords))
	for i, c := range coords {
		points[i] = point.New(c[0], c[1])
	}
	return points, nil
}

func parsePoints(raw []string) ([]point.Point, error) {
	points := make([]point.Point, 0, len(raw))
	for _, s := range raw {
		parts := strings.SplitN(s, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("squarify: --point %q must be \"x,y\"", s)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("squarify: --point %q: %w", s, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("squarify: --point %q: %w", s, err)
		}
		points = append(points, point.New(x, y))
	}
	return points, nil
}
