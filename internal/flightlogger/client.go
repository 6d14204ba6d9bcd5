// Package flightlogger
package flightlogger

import (
	"errors"
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"time"
)

// Client 负责向FlightLogger API发送查询, 处理瞬时错误重试和游标分页合并
type Client struct {
	logger     log.LoggerInterface
	transport  Transport
	retryDelay time.Duration
	sleep      func(duration time.Duration)
}

func NewClient(logger log.LoggerInterface, config *config.FlightLoggerConfig) *Client {
	return &Client{
		logger:     logger,
		transport:  NewHttpTransport(config.Endpoint, config.Token, config.RequestDuration),
		retryDelay: config.RetryDuration,
		sleep:      time.Sleep,
	}
}

// NewClientWithTransport 供测试注入传输层使用
func NewClientWithTransport(logger log.LoggerInterface, transport Transport, retryDelay time.Duration) *Client {
	return &Client{
		logger:     logger,
		transport:  transport,
		retryDelay: retryDelay,
		sleep:      time.Sleep,
	}
}

// execute 执行一次查询, 瞬时传输错误以固定间隔无限重试,
// 其余错误(数据完整性问题)原样上抛, 由调用方中止整次运行
func (client *Client) execute(query string, variables map[string]interface{}) (map[string]interface{}, error) {
	for {
		data, err := client.transport.Execute(query, variables)
		if err == nil {
			return data, nil
		}
		var transportError *TransportError
		if !errors.As(err, &transportError) {
			return nil, err
		}
		client.logger.WarnF("Error sending the request (%v). Retrying in %v...", err, client.retryDelay)
		client.sleep(client.retryDelay)
	}
}

// FetchAll 执行一个分页查询并合并所有页的节点, 保持到达顺序.
// 响应的data对象必须恰好包含一个查询对象, 其下有pageInfo和nodes,
// 后续页通过$after变量携带上一页的endCursor逐页串行获取
func (client *Client) FetchAll(query string, variables map[string]interface{}) ([]Record, error) {
	if variables == nil {
		variables = make(map[string]interface{})
	}

	var nodes []Record
	page := 0
	for {
		data, err := client.execute(query, variables)
		if err != nil {
			return nil, err
		}

		collection, name, err := queryObject(data)
		if err != nil {
			return nil, err
		}

		pageNodes, err := recordList(collection["nodes"])
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", name, err)
		}
		nodes = append(nodes, pageNodes...)

		pageInfo := collection.OptSub("pageInfo")
		if pageInfo == nil || !pageInfo.Bool("hasNextPage") {
			return nodes, nil
		}

		endCursor, err := pageInfo.Str("endCursor")
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", name, err)
		}

		page++
		client.logger.DebugF("Getting page %d of %s with after=%s...", page, name, endCursor)
		variables["after"] = endCursor
	}
}

// queryObject 取data中唯一的查询对象
func queryObject(data map[string]interface{}) (Record, string, error) {
	for name, value := range data {
		object, ok := value.(map[string]interface{})
		if !ok {
			return nil, name, fmt.Errorf("query %s: response object is not an object", name)
		}
		return Record(object), name, nil
	}
	return nil, "", errors.New("response contains no query object")
}
