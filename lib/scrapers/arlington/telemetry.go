package arlington

import (
	"rostersite/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("rostersite.lib.scrapers.arlington")

var captureOutput restyutil.CaptureOutput

// SetRestyCaptureOutput dumps the raw HTTP exchanges of clients created
// after this call, for debugging scrapes against a changed site.
func SetRestyCaptureOutput(out restyutil.CaptureOutput) {
	captureOutput = out
}
