package headerbrute

import (
	"bufio"
	"net/http"
	"os"
)

// HeadersFromFile parses an HTTP request from a file and returns its headers.
// The request line and body are ignored: every probe is a body-less GET to the configured URL.
func HeadersFromFile(filename string) (http.Header, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	request, err := http.ReadRequest(reader)
	if err != nil {
		return nil, err
	}

	headers := request.Header.Clone()
	if request.Host != "" {
		headers.Set("Host", request.Host)
	}
	return headers, nil
}
