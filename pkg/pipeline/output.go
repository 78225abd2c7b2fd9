package pipeline

import (
	"context"
	"io"

	"github.com/matzehuels/lpda/pkg/errors"
	"github.com/matzehuels/lpda/pkg/nec"
	"github.com/matzehuels/lpda/pkg/observability"
)

// Write sends the artifact of res to path, or to stdout when path is
// StdoutPath. File writes are atomic (see [nec.Export]). Nothing is written
// once ctx is cancelled.
func (r *Runner) Write(ctx context.Context, res *Result, path string, stdout io.Writer) error {
	if res == nil || len(res.Artifact) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "nothing to write to %s", path)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	if path == StdoutPath {
		if _, werr := stdout.Write(res.Artifact); werr != nil {
			err = errors.Wrap(errors.ErrCodeIO, werr, "write stdout")
		}
	} else {
		err = nec.Export(path, res.Artifact)
	}
	observability.Output().OnWrite(ctx, path, len(res.Artifact), err)
	if err != nil {
		return err
	}

	r.Logger.Debug("wrote artifact", "path", path, "bytes", len(res.Artifact))
	return nil
}
