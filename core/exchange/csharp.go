package exchange

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"qualitymap/core/quality"
)

// WriteCSharp writes the entries as annotated members of the BO4E
// qualifier enum:
//
//	[Bo4e(typeof(BO4E.ENUM.Qualitaet), null, mappingHint: "Termindaten der Marktlokation")]
//	Z50_Termindaten_der_Marktlokation,
func WriteCSharp(w io.Writer, entries []quality.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "[Bo4e(typeof(BO4E.ENUM.Qualitaet), %s, mappingHint: %s)]\n%s,\n\n",
			e.Quality.BO4EExpr(), strconv.Quote(e.Description), e.Code)
	}
	return bw.Flush()
}
