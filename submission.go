package formdata

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"sort"
	"strings"
)

// Attachment is an uploaded file captured from a multipart submission. It is
// carried through decoding untouched: a zero-length attachment stays an
// attachment and is never rewritten by the empty-value policy.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileName reports the client-supplied file name.
func (a *Attachment) FileName() string { return a.Name }

// FileSize reports the captured payload size in bytes.
func (a *Attachment) FileSize() int64 { return int64(len(a.Data)) }

// Entry is one key/value pair of a submission. Exactly one of Value or File is
// meaningful; File wins when set.
type Entry struct {
	Key   string
	Value string
	File  *Attachment
}

// Submission is an ordered sequence of entries. Keys may repeat (grouped
// fields) and may contain the dot separator (nested fields); both are resolved
// by Decode. Order is significant: repeated keys group in insertion order.
type Submission []Entry

// Text appends a text entry.
func (s Submission) Text(key, value string) Submission {
	return append(s, Entry{Key: key, Value: value})
}

// File appends an attachment entry.
func (s Submission) File(key string, att *Attachment) Submission {
	return append(s, Entry{Key: key, File: att})
}

// ParseURLEncoded parses an application/x-www-form-urlencoded body into a
// Submission, preserving wire order. This is the order-sensitive counterpart
// of url.ParseQuery, which collects values into an unordered map.
func ParseURLEncoded(body string) (Submission, error) {
	var sub Submission
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("formdata: parse key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("formdata: parse value for %q: %w", key, err)
		}
		sub = append(sub, Entry{Key: key, Value: value})
	}
	return sub, nil
}

// ReadMultipart drains a multipart/form-data reader into a Submission, keeping
// parts in wire order. Parts advertising a file name become attachments, the
// rest become text entries. The whole body is read into memory; callers
// handling large uploads should bound the reader beforehand.
func ReadMultipart(r *multipart.Reader) (Submission, error) {
	var sub Submission
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			return sub, nil
		}
		if err != nil {
			return nil, fmt.Errorf("formdata: read part: %w", err)
		}
		data, err := io.ReadAll(part)
		closeErr := part.Close()
		if err != nil {
			return nil, fmt.Errorf("formdata: read part %q: %w", part.FormName(), err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("formdata: close part %q: %w", part.FormName(), closeErr)
		}
		if part.FileName() != "" {
			sub = append(sub, Entry{Key: part.FormName(), File: &Attachment{
				Name:        part.FileName(),
				ContentType: part.Header.Get("Content-Type"),
				Data:        data,
			}})
			continue
		}
		sub = append(sub, Entry{Key: part.FormName(), Value: string(data)})
	}
}

// FromValues converts an already-parsed url.Values into a Submission. The
// original wire order is gone at that point, so keys are visited in sorted
// order for determinism; values within a key keep their recorded order.
func FromValues(values url.Values) Submission {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sub Submission
	for _, key := range keys {
		for _, value := range values[key] {
			sub = append(sub, Entry{Key: key, Value: value})
		}
	}
	return sub
}
