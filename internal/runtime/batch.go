package runtime

import (
	"bufio"
	"context"
	"io"

	herrors "github.com/manav03panchal/humanspan/internal/errors"
	"github.com/manav03panchal/humanspan/internal/logging"
	"github.com/manav03panchal/humanspan/internal/output"
	"github.com/manav03panchal/humanspan/internal/validate"
)

// maxLineFactor bounds a raw batch line relative to the input limit, so an
// oversized line is still read whole and reported instead of failing the run.
const maxLineFactor = 4

// ParseBatch parses r line by line. Blank lines and '#' comments are
// skipped; lines that fail validation are kept with Err set. Reading stops
// early when goctx is cancelled.
func (c *Context) ParseBatch(goctx context.Context, r io.Reader) ([]output.BatchItem, error) {
	log := logging.LoggerFromContext(goctx)
	maxBytes := c.Config.Input.MaxBytes

	limit := maxBytes * maxLineFactor
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(limit, 64*1024)), limit)

	var items []output.BatchItem
	line := 0
	for scanner.Scan() {
		if err := goctx.Err(); err != nil {
			return items, err
		}
		line++

		raw := scanner.Text()
		if validate.IsComment(raw) {
			continue
		}

		text, err := c.ValidateInput(raw)
		if err != nil {
			logging.WarnContext(goctx, "line rejected", logging.KeyLine, line, logging.KeyError, err.Error())
			items = append(items, output.BatchItem{Line: line, Input: validate.Preview(raw, 40), Err: err})
			continue
		}

		items = append(items, output.BatchItem{Line: line, Input: text, Result: c.Parser.Parse(text)})
	}
	if err := scanner.Err(); err != nil {
		if herrors.Is(err, bufio.ErrTooLong) {
			return items, herrors.Wrapf(herrors.ErrInputTooLarge, "line %d", line+1)
		}
		return items, herrors.NewSystemErrorWithOp("read input", "cannot read batch input", err)
	}

	s := output.Summarize(items)
	log.Info("batch finished",
		logging.KeyCount, s.Total,
		"identified", s.Identified,
		"unidentified", s.Unidentified,
		"rejected", s.Rejected,
	)
	return items, nil
}
