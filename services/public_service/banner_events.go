package public_service

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"
)

const bannerEventQueue = "banner_change_queue"

// BannerChangeEvent 横幅变更事件，下游（CDN刷新、站内通知）消费
type BannerChangeEvent struct {
	Position  string    `json:"position"`
	Action    string    `json:"action"`
	BannerId  string    `json:"banner_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// BannerEventPublisher 把横幅变更广播到消息队列
// 发布是尽力而为的：队列不可用不影响横幅主流程
type BannerEventPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

// NewBannerEventPublisher 连接RabbitMQ并声明队列
func NewBannerEventPublisher(amqpURL string) (*BannerEventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	q, err := ch.QueueDeclare(
		bannerEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &BannerEventPublisher{conn: conn, channel: ch, queue: q}, nil
}

// PublishChange 发布一条变更事件，失败只记日志
func (p *BannerEventPublisher) PublishChange(position, action, bannerId string) {
	event := BannerChangeEvent{
		Position:  position,
		Action:    action,
		BannerId:  bannerId,
		Timestamp: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("[WARN] 横幅事件序列化失败: %v", err)
		return
	}

	err = p.channel.Publish(
		"",           // exchange
		p.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		log.Printf("[WARN] 横幅事件发布失败 position=%s action=%s err=%v", position, action, err)
	}
}

// Close 关闭连接
func (p *BannerEventPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
