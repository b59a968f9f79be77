/* Copyright (c) 2021 David Bulkow */

//
// Keeps a journal of batch parse results in JSONL format.
// JSONL is one line per record, each record in JSON. It is
// not an array.
//

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// result is the outcome of parsing one input. Value holds the
// canonical string form of the parsed value.
type result struct {
	Input string `json:"input"`
	Kind  string `json:"kind,omitempty"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func (a *App) parse(text string) result {
	v, err := a.parser.Parse(text)
	if err != nil {
		return result{Input: text, Error: err.Error()}
	}
	return result{Input: text, Kind: v.Kind().String(), Value: v.String()}
}

type record struct {
	Run    uuid.UUID `json:"run"`
	Source string    `json:"source,omitempty"`
	Line   int       `json:"line"`
	result
}

type journal struct {
	filename string
}

func NewJournal(filename string) (*journal, error) {
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return &journal{filename: filename}, nil
}

func (j *journal) Append(records ...*record) error {
	file, err := os.OpenFile(j.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("jsonl encode: %v", err)
		}
	}

	return nil
}

// Replay calls fn with each record in file order, stopping at the
// first error.
func (j *journal) Replay(fn func(rec *record) error) error {
	file, err := os.Open(j.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	// a record repeats its input in both input and error
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 4*maxLine)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var rec record

		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return fmt.Errorf("%s:%d: %v", j.filename, line, err)
		}

		if err := fn(&rec); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return nil
}
