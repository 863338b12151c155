package nilfer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/nilfer/nilfer"
)

func Test(t *testing.T) {
	if err := analysis.Validate([]*analysis.Analyzer{nilfer.Analyzer}); err != nil {
		t.Fatal(err)
	}
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, nilfer.Analyzer, "a")
}
