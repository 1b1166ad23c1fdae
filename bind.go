package formkit

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/tripfolio/formkit/pkg/form"
)

// BindFormData extracts the schema's fields from a url-encoded or
// multipart submission into the data map the orchestrator validates.
// Absent fields stay absent so presence constraints can fail them;
// multi-value fields (checkbox groups like interests) become []string.
func BindFormData(r *http.Request, schema *form.Schema) (map[string]any, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil, fmt.Errorf("%w: missing content type", ErrUnsupportedMediaType)
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedForm, err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedForm, err)
		}
	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}

	data := make(map[string]any)
	for _, name := range schema.Fields() {
		values, ok := r.PostForm[name]
		if !ok {
			continue
		}
		if len(values) == 1 {
			data[name] = values[0]
		} else {
			data[name] = values
		}
	}

	return data, nil
}
