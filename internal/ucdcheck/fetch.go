// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

func closeResponse(res *http.Response) {
	if res != nil && res.Body != nil {
		io.Copy(io.Discard, res.Body)
		res.Body.Close()
	}
}

// fileURL returns the URL of a UCD file of the given Unicode version.
func fileURL(baseURL, version, name string) string {
	return baseURL + "/" + version + "/ucd/" + name
}

// fetch downloads url to filename. An existing file is reused and a
// partially written file is removed.
func fetch(ctx context.Context, client *http.Client, url, filename string) (cached bool, err error) {
	if _, err := os.Stat(filename); err == nil {
		return true, nil
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return false, err
	}
	out, err := os.OpenFile(filename, os.O_EXCL|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return true, nil // created by a concurrent run
		}
		return false, err
	}
	defer out.Close()

	exit := func(err error) (bool, error) {
		out.Close()
		os.Remove(filename)
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return exit(err)
	}
	res, err := client.Do(req)
	if err != nil {
		return exit(err)
	}
	defer closeResponse(res)

	if res.StatusCode != 200 {
		return exit(fmt.Errorf("GET: %s: returned status code: %d",
			res.Request.URL, res.StatusCode))
	}
	if _, err := io.Copy(out, res.Body); err != nil {
		return exit(err)
	}
	if err := res.Body.Close(); err != nil {
		return exit(err)
	}
	if err := out.Close(); err != nil {
		return exit(err)
	}
	return false, nil
}
