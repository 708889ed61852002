// Copyright © 2023 Sloan Childers
package push

import (
	"errors"
	"fmt"
	"io"

	"github.com/osintami/elstatus/base"
)

const (
	EXIT_OK        = 0
	EXIT_STATUS    = 1
	EXIT_TRANSPORT = 2
	EXIT_READ      = 3
)

// Report prints the single outcome line and returns the process exit code.
func Report(w io.Writer, outcome *base.Outcome, err error) int {
	switch {
	case errors.Is(err, ErrReadImage):
		fmt.Fprintf(w, "Failed to read the image: %v\n", err)
		return EXIT_READ
	case errors.Is(err, ErrTransport):
		fmt.Fprintf(w, "Failed to reach the access point: %v\n", err)
		return EXIT_TRANSPORT
	case err != nil || !outcome.OK():
		code := 0
		if outcome != nil {
			code = outcome.StatusCode
		}
		fmt.Fprintf(w, "Failed to upload the image: %d\n", code)
		return EXIT_STATUS
	}
	fmt.Fprintln(w, "Image uploaded successfully!")
	return EXIT_OK
}
