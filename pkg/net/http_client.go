package net

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// HttpClientConfig 出站 HTTP 客户端配置
type HttpClientConfig struct {
	Timeout time.Duration // 0 表示沿用传输层默认值（不设超时）
	Debug   bool          // 打印请求/响应明细到日志
}

// HttpClientService 全系统统一的出站请求入口
// 内部只持有一个 resty.Client，在构造时创建并在所有调用间复用，可被多个 goroutine 并发使用
type HttpClientService struct {
	client *resty.Client
}

func NewHttpClientService(cfg HttpClientConfig, logger *zap.Logger) *HttpClientService {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetRetryCount(0). // 失败直接返回，不重试
		SetDebug(cfg.Debug).
		SetLogger(logger.Named("http").Sugar())

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &HttpClientService{client: client}
}

// DoGet 发送 GET 请求，返回 UTF-8 解码后的响应体
// 不检查状态码，非 2xx 的响应体同样原样返回
func (s *HttpClientService) DoGet(url string) (string, error) {
	return s.execute(s.client.R(), http.MethodGet, url)
}

// DoPost 发送 POST 请求，jsonBody 原样作为请求体，Content-Type 固定为 application/json
func (s *HttpClientService) DoPost(url string, jsonBody string) (string, error) {
	req := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(jsonBody)
	return s.execute(req, http.MethodPost, url)
}

// Close 释放底层空闲连接，进程退出时调用
func (s *HttpClientService) Close() {
	s.client.GetClient().CloseIdleConnections()
}

// execute 发送请求并读取完整响应体
// 响应体只在本次调用内持有，任何返回路径都会关闭
func (s *HttpClientService) execute(req *resty.Request, method, url string) (string, error) {
	resp, err := req.SetDoNotParseResponse(true).Execute(method, url)
	if resp != nil && resp.RawResponse != nil {
		defer resp.RawResponse.Body.Close()
	}
	if err != nil {
		return "", &RequestError{Method: method, URL: url, Kind: classify(url), Err: err}
	}

	body, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil {
		return "", &RequestError{Method: method, URL: url, Kind: ErrTransport, Err: err}
	}

	return strings.ToValidUTF8(string(body), "\uFFFD"), nil
}
