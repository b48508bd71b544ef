package net

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrTransport 连接失败、DNS 解析失败、超时或读取响应体失败
	ErrTransport = errors.New("http transport error")
	// ErrProtocol 传输层拒绝的请求内容，例如非法 URL
	ErrProtocol = errors.New("http protocol content error")
)

// RequestError 出站请求失败
// 错误原样透传给调用方，本层不记录、不重试
type RequestError struct {
	Method string
	URL    string
	Kind   error // ErrTransport 或 ErrProtocol
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Method, e.URL, e.Kind, e.Err)
}

// Unwrap 同时暴露分类与底层原因，errors.Is / errors.As 均可命中
func (e *RequestError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// classify 发送失败时区分 URL 本身不合法与网络故障
func classify(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrProtocol
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrProtocol
	}
	return ErrTransport
}
