package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/bayneri/aqlplan/internal/planner"
)

// EncodeJSON writes payload indented, with <, > and & left as typed so the
// notes read the same as in the text output.
func EncodeJSON(w io.Writer, payload interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func WriteJSON(path string, payload interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeJSON(f, payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func WriteSummaryJSON(path string, plan planner.Plan) error {
	return WriteJSON(path, Summary{SchemaVersion: SchemaVersion, Plan: plan})
}
