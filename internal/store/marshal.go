package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/subsave/internal/subscription"
)

const (
	separator = ","
	numFields = 4
)

// header is accepted as the first line of a file but never written.
const header = "id,customerId,asin,frequency"

// encodeRecords writes one line per record in the order given.
func encodeRecords(w io.Writer, records []subscription.Subscription) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := bw.WriteString(encodeLine(r)); err != nil {
			return fmt.Errorf("encode %s: %w", r.ID, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("encode %s: %w", r.ID, err)
		}
	}
	return bw.Flush()
}

func encodeLine(r subscription.Subscription) string {
	return strings.Join([]string{
		r.ID,
		r.CustomerID,
		r.ASIN,
		strconv.Itoa(r.Frequency),
	}, separator)
}

// decodeRecords reads a full record set. Blank lines and a leading header
// are skipped; anything else that is not a well-formed record is an error.
//
// Returns an empty slice (not nil) for an empty input.
func decodeRecords(r io.Reader) ([]subscription.Subscription, error) {
	records := []subscription.Subscription{}
	seen := make(map[string]int)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(records) == 0 && line == header {
			continue
		}

		rec, err := decodeLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		if first, ok := seen[rec.ID]; ok {
			return nil, &ParseError{
				Line:    lineNo,
				Code:    ErrCodeDuplicateID,
				Message: fmt.Sprintf("id %q already used on line %d", rec.ID, first),
			}
		}
		seen[rec.ID] = lineNo
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	return records, nil
}

func decodeLine(line string, lineNo int) (subscription.Subscription, error) {
	fields := strings.Split(line, separator)
	if len(fields) != numFields {
		return subscription.Subscription{}, &ParseError{
			Line:    lineNo,
			Code:    ErrCodeFieldCount,
			Message: fmt.Sprintf("expected %d fields, got %d", numFields, len(fields)),
		}
	}

	names := [...]string{"id", "customerId", "asin"}
	for i, name := range names {
		if fields[i] == "" {
			return subscription.Subscription{}, &ParseError{
				Line:    lineNo,
				Code:    ErrCodeEmptyField,
				Message: name + " is empty",
			}
		}
	}

	frequency, err := strconv.Atoi(fields[3])
	if err != nil {
		return subscription.Subscription{}, &ParseError{
			Line:    lineNo,
			Code:    ErrCodeFrequency,
			Message: fmt.Sprintf("frequency %q is not an integer", fields[3]),
		}
	}

	return subscription.Subscription{
		ID:         fields[0],
		CustomerID: fields[1],
		ASIN:       fields[2],
		Frequency:  frequency,
	}, nil
}
