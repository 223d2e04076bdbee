package httpmsg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	liberr "github.com/nabbar/netkit/errors"
)

// ReadRequest parses one HTTP/1.1 request-line + headers + (optional,
// length-prefixed) body from br, enforcing headerLimit on the combined
// request-line+header byte count and bodyLimit (0 = unlimited) on the body.
//
// Chunked transfer-coding is rejected; only length-prefixed, buffered
// bodies are supported, and a request without a Content-Length header is
// read as having no body.
func ReadRequest(br *bufio.Reader, headerLimit, bodyLimit int) (Request, liberr.Error) {
	lr := &limitedLineReader{br: br, limit: headerLimit}

	line, err := lr.readLine()
	if err != nil {
		return Request{}, classifyReadErr(err)
	}

	method, target, version, perr := parseRequestLine(line)
	if perr != nil {
		return Request{}, liberr.ErrMalformedReq.Error(perr)
	}

	h := NewHeader()
	for {
		line, err := lr.readLine()
		if err != nil {
			return Request{}, classifyReadErr(err)
		}
		if line == "" {
			break
		}
		k, v, ok := splitHeaderLine(line)
		if !ok {
			return Request{}, liberr.ErrMalformedReq.Errorf("malformed header line %q", line)
		}
		h.Add(k, v)
	}

	body, berr := readBody(br, h, bodyLimit)
	if berr != nil {
		return Request{}, berr
	}

	return Request{
		Method:  method,
		Target:  target,
		Version: version,
		Header:  h,
		Body:    body,
	}, nil
}

func classifyReadErr(err error) liberr.Error {
	if err == io.EOF {
		return liberr.ErrConnClosed.Error(err)
	}
	if lerr, ok := err.(limitExceededErr); ok {
		_ = lerr
		return liberr.ErrHeaderTooLarge.Error(err)
	}
	return liberr.ErrMalformedReq.Error(err)
}

type limitExceededErr struct{}

func (limitExceededErr) Error() string { return "header limit exceeded" }

// limitedLineReader reads CRLF- or LF-terminated lines while tracking the
// cumulative byte budget across the request-line and all header lines.
type limitedLineReader struct {
	br    *bufio.Reader
	limit int
	read  int
}

func (l *limitedLineReader) readLine() (string, error) {
	line, err := l.br.ReadString('\n')
	if err != nil {
		return "", err
	}

	l.read += len(line)
	if l.limit > 0 && l.read > l.limit {
		return "", limitExceededErr{}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func parseRequestLine(line string) (method, target, version string, err error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("malformed request line %q", line)
	}
	if !strings.HasPrefix(parts[2], "HTTP/") {
		return "", "", "", fmt.Errorf("unsupported protocol %q", parts[2])
	}
	return parts[0], parts[1], parts[2], nil
}

func splitHeaderLine(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	return line[:i], strings.TrimSpace(line[i+1:]), true
}

func readBody(br *bufio.Reader, h Header, bodyLimit int) ([]byte, liberr.Error) {
	if strings.Contains(strings.ToLower(h.Get("Transfer-Encoding")), "chunked") {
		return nil, liberr.ErrMalformedReq.Errorf("chunked request bodies are not supported")
	}

	cl := h.Get("Content-Length")
	if cl == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(cl)
	if err != nil || n < 0 {
		return nil, liberr.ErrMalformedReq.Errorf("invalid Content-Length %q", cl)
	}
	if n == 0 {
		return []byte{}, nil
	}
	if bodyLimit > 0 && n > bodyLimit {
		return nil, liberr.ErrBodyTooLarge.Error(nil)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, liberr.ErrMalformedReq.Error(err)
	}
	return buf, nil
}

// WriteResponse serializes resp onto w as a status line, headers, and
// body; Content-Length is always populated for non-chunked responses.
func WriteResponse(w io.Writer, resp Response) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(resp.StatusLine() + "\r\n"); err != nil {
		return err
	}

	if !resp.Header.Has("Content-Length") && !resp.Chunked {
		resp.Header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}
	if !resp.Header.Has("Connection") {
		if resp.KeepAlive {
			resp.Header.Set("Connection", "keep-alive")
		} else {
			resp.Header.Set("Connection", "close")
		}
	}

	for _, k := range resp.Header.Keys() {
		for _, v := range resp.Header.Values(k) {
			if _, err := bw.WriteString(canonicalHeaderKey(k) + ": " + v + "\r\n"); err != nil {
				return err
			}
		}
	}
	if _, err := bw.WriteString("\r\n"); err != nil {
		return err
	}
	if len(resp.Body) > 0 {
		if _, err := bw.Write(resp.Body); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func canonicalHeaderKey(k string) string {
	parts := strings.Split(k, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, "-")
}
