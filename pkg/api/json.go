package api

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSONDocument decodes a single JSON document from r into v. Numbers
// are kept as json.Number. Anything but whitespace after the document is an
// error.
func DecodeJSONDocument(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("error parsing JSON data: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after the document")
		}
		return fmt.Errorf("error parsing JSON data: %w", err)
	}
	return nil
}
