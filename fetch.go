package main

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pierrec/lz4"
	"github.com/pkg/errors"
)

// fetchDataset downloads the resource body and transparently decompresses it
// when the URL path ends in a known archive extension. The dataset can be any
// size, so gzip, lz4 and zip payloads are all accepted.
func fetchDataset(client *http.Client, rawURL string) ([]byte, error) {
	resp, err := client.Get(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "download dataset")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read dataset body")
	}
	return unpackBody(rawURL, body)
}

func unpackBody(rawURL string, body []byte) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return body, nil
	}
	switch path.Ext(parsed.Path) {
	case ".gz":
		return unpackGzipBody(body)
	case ".lz4":
		return unpackLZ4Body(body)
	case ".zip":
		return unpackZipBody(body)
	}
	return body, nil
}

func unpackGzipBody(body []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "open gzip body")
	}
	defer gr.Close()
	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, errors.Wrap(err, "uncompress gzip body")
	}
	return out, nil
}

func unpackLZ4Body(body []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(body)))
	if err != nil {
		return nil, errors.Wrap(err, "uncompress lz4 body")
	}
	return out, nil
}

// unpackZipBody extracts the largest file in the archive, which for a dataset
// upload is the data itself rather than any bundled readme.
func unpackZipBody(body []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, errors.Wrap(err, "open zip body")
	}

	var largest *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largest = f
			largestSize = f.UncompressedSize64
		}
	}
	if largest == nil {
		return nil, errors.New("zip body contains no files")
	}

	rc, err := largest.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open %s in zip body", largest.Name)
	}
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "extract %s from zip body", largest.Name)
	}
	return out, nil
}
