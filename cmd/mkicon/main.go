// mkicon generates a 256×256 sample icon from the shared icon package,
// encoded as ICO or PNG depending on the output file extension.
// Usage: go run ./cmd/mkicon <output.(ico|png)>
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	ico "github.com/Kodeworks/golang-image-ico"

	"github.com/andrechen77/icoraw/internal/icon"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: mkicon <output.(ico|png)>")
		os.Exit(1)
	}
	out := os.Args[1]

	img := icon.Draw(256)
	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(out), ".ico") {
		err = ico.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
