package common

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

func GetStringValueOrDefault(targetValue, defaultValue string) string {
	if targetValue != "" {
		return targetValue
	}
	return defaultValue
}

func CommonRequest(ctx context.Context, requestUrl, httpMethod string, postBody json.RawMessage, header map[string][]string, skipTlsCheck bool, timeout time.Duration) ([]byte, http.Header, int, error) {
	var body io.Reader
	if postBody != nil {
		body = bytes.NewReader(postBody)
	}
	return CommonRequestForwardBody(ctx, requestUrl, httpMethod, body, header, skipTlsCheck, timeout)
}

// CommonRequestForwardBody sends a single request with no retry, timeout bounds the whole exchange.
func CommonRequestForwardBody(ctx context.Context, requestUrl, httpMethod string, postBody io.Reader, header map[string][]string, skipTlsCheck bool, timeout time.Duration) ([]byte, http.Header, int, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, reqErr := http.NewRequestWithContext(ctx, httpMethod, requestUrl, postBody)
	if reqErr != nil {
		return []byte{}, nil, http.StatusInternalServerError, reqErr
	}

	for key, val := range header {
		req.Header.Set(key, strings.Join(val, ","))
	}

	tr := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DisableKeepAlives: true,
	}
	if skipTlsCheck {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	client := &http.Client{
		Transport: tr,
	}

	resp, respErr := client.Do(req)
	if respErr != nil {
		return []byte{}, nil, http.StatusInternalServerError, respErr
	}
	defer resp.Body.Close()
	body, readBodyErr := io.ReadAll(resp.Body)
	if readBodyErr != nil {
		return []byte{}, nil, http.StatusInternalServerError, readBodyErr
	}
	return body, resp.Header, resp.StatusCode, nil
}

func BuildQueryUrl(endpoint string, query url.Values) (string, error) {
	baseURL, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	baseURL.RawQuery = query.Encode()
	return baseURL.String(), nil
}

func CreateDirIfNotExists(dirLocation string) error {
	if _, err := os.Stat(dirLocation); os.IsNotExist(err) {
		return os.MkdirAll(dirLocation, os.ModeDir|0755)
	}
	return nil
}

// check file exists
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// TruncateRunes cuts s to at most n runes, never splitting a multi-byte character.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
