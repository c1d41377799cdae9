package output

import (
	"fmt"
	"io"
	"os"
)

// Write writes text to the specified output (file path or stdout).
func Write(text, outPath string) error {
	if outPath == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
