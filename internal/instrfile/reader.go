// Package instrfile reads the textual instruction-file format used to
// drive the order book from a script: one record per line, a blank line
// or an optional trailing "R" verification line ends the stream.
//
// Grammar (ASCII, space-delimited fields):
//
//	A <side> <orderType> <price> <quantity> <id>   add an order
//	M <id> <side> <price> <quantity>               modify an order
//	C <id>                                         cancel an order
//	R <total> <bids> <asks>                        expected final counts (optional, last line)
//
// An "R" line, if present, must be the last non-blank line in the file —
// any record found after it is malformed input and aborts the parse with
// an error, it is never silently dropped.
//
// This is a collaborator for cmd/bookctl, not part of the engine itself:
// the engine never imports this package.
package instrfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/umarfarooq-loki/bookengine"
)

// ActionKind identifies which of the three record shapes a Record holds.
type ActionKind uint8

const (
	Add ActionKind = iota
	Modify
	Cancel
)

// Record is one parsed instruction-file line.
type Record struct {
	Kind      ActionKind
	OrderID   bookengine.OrderID
	Side      bookengine.Side
	OrderType bookengine.OrderType
	Price     bookengine.Price
	Quantity  bookengine.Quantity
}

// Expectation is the optional trailing "R" verification line: the
// engine's expected final size and per-side level counts.
type Expectation struct {
	Total int
	Bids  int
	Asks  int
}

// Read parses path into its ordered records plus an optional trailing
// expectation line. Parsing stops at the first blank line, or at a valid
// "R" line provided nothing but blank lines follow it — an "R" line with
// further records after it is an error, matching
// InputHandler::GetInformationsAndResult's !file.eof() check.
func Read(path string) ([]Record, *Expectation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("instrfile: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFrom(f, path)
}

// ReadFrom parses records from r. name is used only to annotate errors.
func ReadFrom(r io.Reader, name string) ([]Record, *Expectation, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			return records, nil, nil
		}

		if line[0] == 'R' {
			exp, err := parseExpectation(line)
			if err != nil {
				return nil, nil, fmt.Errorf("instrfile: %s:%d: %w", name, lineNo, err)
			}
			if trailingLineNo, ok := nextNonBlank(scanner, lineNo); ok {
				return nil, nil, fmt.Errorf("instrfile: %s:%d: result line must be the final record", name, trailingLineNo)
			}
			if err := scanner.Err(); err != nil {
				return nil, nil, fmt.Errorf("instrfile: %s: %w", name, err)
			}
			return records, exp, nil
		}

		rec, err := parseRecord(line)
		if err != nil {
			return nil, nil, fmt.Errorf("instrfile: %s:%d: %w", name, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("instrfile: %s: %w", name, err)
	}

	return records, nil, nil
}

// nextNonBlank scans ahead from fromLineNo looking for a non-blank line,
// matching original_source/InputHandler.cpp's check that an "R" line is
// only valid when !file.eof() — an R line followed by further content is
// malformed input, not a silent end-of-parse. Returns the 1-indexed line
// number of the first non-blank line found and ok == true, or ok == false
// if only blank lines (or nothing) remain.
func nextNonBlank(scanner *bufio.Scanner, fromLineNo int) (int, bool) {
	lineNo := fromLineNo
	for scanner.Scan() {
		lineNo++
		if scanner.Text() != "" {
			return lineNo, true
		}
	}
	return 0, false
}

func parseExpectation(line string) (*Expectation, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("malformed R line %q", line)
	}
	total, err := parseUint(fields[1])
	if err != nil {
		return nil, fmt.Errorf("R total: %w", err)
	}
	bids, err := parseUint(fields[2])
	if err != nil {
		return nil, fmt.Errorf("R bids: %w", err)
	}
	asks, err := parseUint(fields[3])
	if err != nil {
		return nil, fmt.Errorf("R asks: %w", err)
	}
	return &Expectation{Total: total, Bids: bids, Asks: asks}, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, fmt.Errorf("empty record")
	}

	switch fields[0] {
	case "A":
		if len(fields) != 6 {
			return Record{}, fmt.Errorf("add record wants 6 fields, got %d: %q", len(fields), line)
		}
		side, err := parseSide(fields[1])
		if err != nil {
			return Record{}, err
		}
		otype, err := parseOrderType(fields[2])
		if err != nil {
			return Record{}, err
		}
		price, err := parsePrice(fields[3])
		if err != nil {
			return Record{}, err
		}
		qty, err := parseQuantity(fields[4])
		if err != nil {
			return Record{}, err
		}
		id, err := parseOrderID(fields[5])
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: Add, Side: side, OrderType: otype, Price: price, Quantity: qty, OrderID: id}, nil

	case "M":
		if len(fields) != 5 {
			return Record{}, fmt.Errorf("modify record wants 5 fields, got %d: %q", len(fields), line)
		}
		id, err := parseOrderID(fields[1])
		if err != nil {
			return Record{}, err
		}
		side, err := parseSide(fields[2])
		if err != nil {
			return Record{}, err
		}
		price, err := parsePrice(fields[3])
		if err != nil {
			return Record{}, err
		}
		qty, err := parseQuantity(fields[4])
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: Modify, OrderID: id, Side: side, Price: price, Quantity: qty}, nil

	case "C":
		if len(fields) != 2 {
			return Record{}, fmt.Errorf("cancel record wants 2 fields, got %d: %q", len(fields), line)
		}
		id, err := parseOrderID(fields[1])
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: Cancel, OrderID: id}, nil

	default:
		return Record{}, fmt.Errorf("unrecognized record type %q", fields[0])
	}
}

func parseSide(s string) (bookengine.Side, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid side %q", s)
	}
	switch s[0] {
	case 'B':
		return bookengine.Buy, nil
	case 'S':
		return bookengine.Sell, nil
	default:
		return 0, fmt.Errorf("invalid side %q", s)
	}
}

func parseOrderType(s string) (bookengine.OrderType, error) {
	switch s {
	case "Market":
		return bookengine.Market, nil
	case "GoodTillCancel":
		return bookengine.GoodTillCancel, nil
	case "GoodForDay":
		return bookengine.GoodForDay, nil
	case "FillAndKill":
		return bookengine.FillAndKill, nil
	case "FillOrKill":
		return bookengine.FillOrKill, nil
	default:
		return 0, fmt.Errorf("invalid order type %q", s)
	}
}

func parsePrice(s string) (bookengine.Price, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	n, err := parseUint(s)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return bookengine.Price(n), nil
}

func parseQuantity(s string) (bookengine.Quantity, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	n, err := parseUint(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return bookengine.Quantity(n), nil
}

func parseOrderID(s string) (bookengine.OrderID, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid order id %q", s)
	}
	n, err := parseUint(s)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q: %w", s, err)
	}
	return bookengine.OrderID(n), nil
}

func parseUint(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
