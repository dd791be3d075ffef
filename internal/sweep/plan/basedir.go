package plan

import (
	"errors"
	"io/fs"
	"os"

	"github.com/DjordjeVuckovic/trec-sweep/internal/apperr"
)

// CheckBaseDir verifies the base directory exists, is a directory and accepts
// new files. It is meant to run once at startup, before any experiment.
func CheckBaseDir(dir string) error {
	if dir == "" {
		return apperr.NewFieldValidation("base_dir", "is required", nil)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperr.NewFieldValidation("base_dir", "does not exist", err)
		}
		return apperr.NewFieldValidation("base_dir", "cannot be accessed", err)
	}
	if !info.IsDir() {
		return apperr.NewFieldValidation("base_dir", "is not a directory", nil)
	}

	probe, err := os.CreateTemp(dir, ".trec-sweep-probe-*")
	if err != nil {
		return apperr.NewFieldValidation("base_dir", "is not writable", err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	return nil
}
