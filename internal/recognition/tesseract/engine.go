package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/docflowhq/docflow/internal/entity"
	"github.com/docflowhq/docflow/internal/recognition"
)

// Engine implements recognition.Engine using the linked libtesseract
// client. A fresh client is created per page so engines can run
// concurrently across the orchestrator's fan-out.
type Engine struct {
	clientFactory func() *gosseract.Client
}

func NewEngine() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

func (e *Engine) Recognize(ctx context.Context, in recognition.Input) (recognition.Result, error) {
	select {
	case <-ctx.Done():
		return recognition.Result{}, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Data); err != nil {
		return recognition.Result{}, fmt.Errorf("set image: %w", err)
	}
	if in.Language != "" {
		if err := c.SetLanguage(in.Language); err != nil {
			return recognition.Result{}, fmt.Errorf("set language: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return recognition.Result{}, fmt.Errorf("recognize text: %w", err)
	}

	res := recognition.Result{Text: strings.TrimSpace(text)}
	res.TokenConfidences, res.Boxes = wordBoxes(c)
	return res, nil
}

func wordBoxes(c *gosseract.Client) ([]float32, []entity.Box) {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return nil, nil
	}
	confs := make([]float32, 0, len(boxes))
	out := make([]entity.Box, 0, len(boxes))
	for _, b := range boxes {
		conf := float32(b.Confidence / 100.0)
		confs = append(confs, conf)
		out = append(out, entity.Box{
			Word:       b.Word,
			X0:         b.Box.Min.X,
			Y0:         b.Box.Min.Y,
			X1:         b.Box.Max.X,
			Y1:         b.Box.Max.Y,
			Confidence: conf,
		})
	}
	return confs, out
}
