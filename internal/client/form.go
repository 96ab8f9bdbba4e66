package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

type formFile struct {
	field    string
	filename string
	content  []byte
}

// Form accumulates multipart fields and file parts. Gateways choose multipart
// encoding whenever a file payload is present; the transport sets its own
// boundary via the encoded content type.
type Form struct {
	fields [][2]string
	files  []formFile
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, [2]string{key, value})
	return f
}

// SetIfPresent skips empty values so absent form fields are omitted rather
// than sent blank, mirroring the query-parameter rule.
func (f *Form) SetIfPresent(key, value string) *Form {
	if value == "" {
		return f
	}
	return f.Set(key, value)
}

func (f *Form) AddFile(field, filename string, content []byte) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
	return f
}

func (f *Form) HasFiles() bool {
	return len(f.files) > 0
}

func (f *Form) encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", kv[0], err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", file.field, err)
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
