package console

import (
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

var errInvalidDiagnosisFile = errors.New("diagnosis file is not valid JSON")

func openImage(path string) (apiclient.Image, *os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return apiclient.Image{}, nil, err
	}
	image := apiclient.Image{
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Data:        file,
	}
	return image, file, nil
}

type AnalyzeCommand struct {
	Meta
}

func (c *AnalyzeCommand) Synopsis() string {
	return "Send an image to the AI service for diagnosis"
}

func (c *AnalyzeCommand) Help() string {
	return "Usage: drctl analyze <image>"
}

func (c *AnalyzeCommand) Run(args []string) int {
	if len(args) != 1 {
		return c.usage(c.Help())
	}

	ctx, cancel := c.context()
	defer cancel()

	current, ok := c.enter(ctx, constvars.RouteNameNewDiagnosis)
	if !ok {
		return 1
	}

	image, file, err := openImage(args[0])
	if err != nil {
		return c.fail(err)
	}
	defer file.Close()

	payload, err := c.Dashboard.AnalyzeImage(ctx, current, image)
	if err != nil {
		return c.fail(err)
	}
	return c.output(payload)
}

type SegmentCommand struct {
	Meta
}

func (c *SegmentCommand) Synopsis() string {
	return "Segment an image and save the mask"
}

func (c *SegmentCommand) Help() string {
	return strings.TrimSpace(`
Usage: drctl segment -o <output-file> <image>

  Writes the mask returned by the AI service to output-file unchanged.
`)
}

func (c *SegmentCommand) Run(args []string) int {
	var output string
	flags := c.flagSet("segment")
	flags.StringVar(&output, "o", "", "")
	if err := flags.Parse(args); err != nil || flags.NArg() != 1 || output == "" {
		return c.usage(c.Help())
	}

	ctx, cancel := c.context()
	defer cancel()

	current, ok := c.enter(ctx, constvars.RouteNameNewDiagnosis)
	if !ok {
		return 1
	}

	image, file, err := openImage(flags.Arg(0))
	if err != nil {
		return c.fail(err)
	}
	defer file.Close()

	segmentation, err := c.Dashboard.SegmentImage(ctx, current, image)
	if err != nil {
		return c.fail(err)
	}

	if err := os.WriteFile(output, segmentation.Mask, 0644); err != nil {
		return c.fail(err)
	}

	c.Ui.Output(fmt.Sprintf("Mask written to %s (%d bytes, %s)", output, len(segmentation.Mask), segmentation.ContentType))
	if segmentation.MaskObject != "" {
		c.Ui.Output(fmt.Sprintf("Archived as %s", segmentation.MaskObject))
	}
	return 0
}

type SubmitCommand struct {
	Meta
}

func (c *SubmitCommand) Synopsis() string {
	return "Submit a diagnosis"
}

func (c *SubmitCommand) Help() string {
	return strings.TrimSpace(`
Usage: drctl submit <json-file>

  Sends the JSON document in json-file to the DB API as is.
`)
}

func (c *SubmitCommand) Run(args []string) int {
	if len(args) != 1 {
		return c.usage(c.Help())
	}

	diagnosis, err := os.ReadFile(args[0])
	if err != nil {
		return c.fail(err)
	}
	if !json.Valid(diagnosis) {
		return c.fail(errInvalidDiagnosisFile)
	}

	ctx, cancel := c.context()
	defer cancel()

	current, ok := c.enter(ctx, constvars.RouteNameNewDiagnosis)
	if !ok {
		return 1
	}

	payload, err := c.Dashboard.Submit(ctx, current, diagnosis)
	if err != nil {
		return c.fail(err)
	}
	return c.output(payload)
}
