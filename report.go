package scanfilter

import (
	"bufio"
	"io"

	"github.com/tamirms/scanfilter/internal/encoding"
)

const (
	reportHeader    = "Output array: \n"
	reportNoResults = "No results found.\n"
)

// WriteReport renders matches to w: a header line, then one value per line
// (floats with six fractional digits, integers in decimal). When matches is
// empty the header is followed by "No results found." rather than an empty
// listing.
func WriteReport[T Number](w io.Writer, matches []T) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(reportHeader); err != nil {
		return err
	}
	var line []byte
	for _, v := range matches {
		line = encoding.AppendFixed(line[:0], v)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	if len(matches) == 0 {
		if _, err := bw.WriteString(reportNoResults); err != nil {
			return err
		}
	}
	return bw.Flush()
}
