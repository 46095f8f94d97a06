// pkg/ldif/codec.go

package ldif

import (
	"context"
	"strconv"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-ldap/ldap/v3"
	goldif "github.com/go-ldap/ldif"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// FromLDIF parses LDIF text into records. Attribute names are lower-cased;
// the DN keeps its original case. Each value becomes Text when it decodes as
// UTF-8 and Bytes otherwise, so binary attributes survive a round trip. Any
// syntax error aborts the whole parse with a ParseError.
func FromLDIF(ctx context.Context, text string) ([]*Record, error) {
	logger := otelzap.Ctx(ctx)

	content, err := goldif.Parse(text)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	entries := content.AllEntries()
	records := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		record := &Record{
			DN:         entry.DN,
			Attributes: make(map[string][]Value, len(entry.Attributes)),
		}
		for _, attr := range entry.Attributes {
			name := strings.ToLower(attr.Name)
			for _, raw := range attr.ByteValues {
				record.Attributes[name] = append(record.Attributes[name], decodeValue(raw))
			}
		}
		records = append(records, record)
	}

	logger.Debug("Parsed LDIF data", zap.Int("records", len(records)))
	return records, nil
}

// ToLDIF serializes records to LDIF text in input order. Every record is
// validated before any output is generated; a structural defect fails the
// whole batch with a RecordError naming the record and attribute. Values the
// format considers unsafe are emitted in the base64 (::) form by the grammar
// codec. Attributes are written in sorted name order.
func ToLDIF(ctx context.Context, records []*Record) (string, error) {
	logger := otelzap.Ctx(ctx)

	doc := &goldif.LDIF{Entries: make([]*goldif.Entry, 0, len(records))}
	for i, record := range records {
		entry, err := recordToEntry(i, record)
		if err != nil {
			return "", err
		}
		doc.Entries = append(doc.Entries, &goldif.Entry{Entry: entry})
	}

	out, err := goldif.Marshal(doc)
	if err != nil {
		return "", &EncodeError{Err: err}
	}
	logger.Debug("Generated LDIF data", zap.Int("records", len(records)))
	return out, nil
}

func recordToEntry(index int, record *Record) (*ldap.Entry, error) {
	if record == nil {
		return nil, &RecordError{Index: index, Reason: "record is nil"}
	}
	if record.DN == "" {
		return nil, &RecordError{Index: index, Reason: "record has no DN"}
	}
	attrs := make(map[string][]string, len(record.Attributes))
	for name, values := range record.Attributes {
		if name == "" {
			return nil, &RecordError{Index: index, DN: record.DN, Reason: "empty attribute name"}
		}
		if strings.EqualFold(name, "dn") {
			return nil, &RecordError{Index: index, DN: record.DN, Field: name,
				Reason: "the DN must not appear in the attribute map"}
		}
		flat, err := flattenValues(values, false)
		if err != nil {
			return nil, &RecordError{Index: index, DN: record.DN, Field: name, Reason: err.Error()}
		}
		attrs[name] = flat
	}
	return ldap.NewEntry(record.DN, attrs), nil
}

// flattenValues renders values to their wire strings. Lists may hold only
// scalar values, matching what the codec ever produces.
func flattenValues(values []Value, nested bool) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case Text:
			out = append(out, string(v))
		case Bytes:
			out = append(out, string(v))
		case Integer:
			out = append(out, strconv.FormatInt(int64(v), 10))
		case List:
			if nested {
				return nil, cerr.New("nested value lists are not supported")
			}
			flat, err := flattenValues([]Value(v), true)
			if err != nil {
				return nil, err
			}
			out = append(out, flat...)
		default:
			return nil, cerr.Newf("unsupported value type %T", v)
		}
	}
	return out, nil
}
