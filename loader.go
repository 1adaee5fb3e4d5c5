// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// LoadResult summarizes a bulk load.
type LoadResult struct {
	Read       int
	Inserted   int
	Duplicates int
}

// readKeys returns the keys in r, one per line. Blank lines and lines
// starting with '#' are skipped; surrounding whitespace is trimmed.
func readKeys(r io.Reader) ([]string, error) {
	var keys []string

	scanner := bufio.NewScanner(r)
	// Long string keys are allowed, up to 1 MiB per line
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// openInput opens path for reading; "-" stands for stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	return file, nil
}

// loadKeys inserts keys into the session, drawing a progress bar on
// progress unless it is nil.
func loadKeys(s *Session, keys []string, progress io.Writer) (LoadResult, error) {
	result := LoadResult{Read: len(keys)}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🌳 Loading keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	for i, key := range keys {
		inserted, err := s.Insert(key)
		if err != nil {
			return result, fmt.Errorf("key %d: %w", i+1, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Duplicates++
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return result, nil
}

func loadFile(s *Session, path string, progress io.Writer) (LoadResult, error) {
	in, err := openInput(path)
	if err != nil {
		return LoadResult{}, err
	}
	defer in.Close()

	keys, err := readKeys(in)
	if err != nil {
		return LoadResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return loadKeys(s, keys, progress)
}
