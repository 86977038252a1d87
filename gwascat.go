// Package gwascat holds helpers shared by the command-line drivers built on
// the catalog packages.
package gwascat

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// OpenFileOrURL fetches the full contents of a local file or, when the input
// starts with http, of a remote URL. The GWAS catalog is published as a TSV
// download, so pointing a driver directly at the release URL is common.
func OpenFileOrURL(input string) ([]byte, error) {
	var f io.ReadCloser

	if strings.HasPrefix(input, "http") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer resp.Body.Close()

		f = resp.Body
	} else {
		file, err := os.Open(input)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer file.Close()

		f = file
	}

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return fileBytes, nil
}
