// Package desired loads and validates the desired-rename list. A list is
// accepted or rejected as a whole: one bad record rejects every record.
package desired

import (
	"bufio"
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/agentstation/addrename/internal/validation"
	"github.com/agentstation/addrename/pkg/constants"
	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/inventory"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads and validates the list at path.
func Load(path string) ([]inventory.DesiredRename, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	list, err := Parse(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Parse reads two-field records (new name, match key), one per line.
// Every invalid line is reported with its number and raw content; if any
// line is invalid no list is returned. Blank lines are ignored and trailing
// whitespace after the match key is dropped.
func Parse(r io.Reader) ([]inventory.DesiredRename, error) {
	sc := bufio.NewScanner(r)

	var (
		list []inventory.DesiredRename
		errs []error
		line int
	)
	for sc.Scan() {
		line++
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		record, err := parseRecord(raw)
		if err != nil {
			errs = append(errs, errors.NewLineError(line, raw, err.Error()))
			continue
		}
		if verr := validateRecord(line, raw, record); verr != nil {
			errs = append(errs, verr)
			continue
		}
		list = append(list, inventory.DesiredRename{
			NewName:  record[0],
			MatchKey: strings.TrimRightFunc(record[1], unicode.IsSpace),
			Line:     line,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WrapParse("csv", "", err)
	}

	if len(errs) > 0 {
		return nil, stderrors.Join(errs...)
	}
	return list, nil
}

// parseRecord splits one line with CSV quoting rules.
func parseRecord(raw string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(raw))
	cr.FieldsPerRecord = -1
	record, err := cr.Read()
	if err != nil {
		var perr *csv.ParseError
		if stderrors.As(err, &perr) {
			return nil, perr.Err
		}
		return nil, err
	}
	return record, nil
}

func validateRecord(line int, content string, record []string) error {
	if len(record) != constants.FieldsPerRecord {
		return errors.NewLineError(line, content,
			fmt.Sprintf("expected %d fields, got %d", constants.FieldsPerRecord, len(record)))
	}
	if err := validation.ObjectName(record[0]); err != nil {
		return errors.NewLineError(line, content, err.Error())
	}
	return nil
}
