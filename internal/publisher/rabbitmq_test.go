package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_analytics/internal/domain"
)

type recordingChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
	closed   bool
}

func (c *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.exchange, c.key = exchange, key
	c.msgs = append(c.msgs, msg)
	return nil
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func newTestPublisher(ch *recordingChannel) *RabbitMQ {
	return &RabbitMQ{
		channel:    ch,
		exchange:   "news_analytics",
		routingKey: "articles",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestRabbitMQ_Publish(t *testing.T) {
	ch := &recordingChannel{}
	pub := newTestPublisher(ch)

	score := 0.4
	article := &domain.Article{ID: 7, Title: "Rivian ships R2", URL: "https://electrek.co/r2", SentimentScore: &score}

	require.NoError(t, pub.Publish(context.Background(), domain.ActionScored, article))
	require.Len(t, ch.msgs, 1)

	msg := ch.msgs[0]
	assert.Equal(t, "news_analytics", ch.exchange)
	assert.Equal(t, "articles", ch.key)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, domain.ActionScored, msg.Type)
	assert.NotEmpty(t, msg.MessageId)

	var event domain.ArticleEvent
	require.NoError(t, json.Unmarshal(msg.Body, &event))
	assert.Equal(t, msg.MessageId, event.ID)
	assert.Equal(t, domain.ActionScored, event.Action)
	assert.Equal(t, int64(7), event.Article.ID)
	assert.Equal(t, "Rivian ships R2", event.Article.Title)
	require.NotNil(t, event.Article.SentimentScore)
	assert.InDelta(t, 0.4, *event.Article.SentimentScore, 1e-9)
	assert.True(t, event.Timestamp.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestRabbitMQ_PublishUniqueIDs(t *testing.T) {
	ch := &recordingChannel{}
	pub := newTestPublisher(ch)

	article := &domain.Article{ID: 1}
	require.NoError(t, pub.Publish(context.Background(), domain.ActionIngested, article))
	require.NoError(t, pub.Publish(context.Background(), domain.ActionIngested, article))

	require.Len(t, ch.msgs, 2)
	assert.NotEqual(t, ch.msgs[0].MessageId, ch.msgs[1].MessageId)
}

func TestRabbitMQ_PublishError(t *testing.T) {
	ch := &recordingChannel{err: errors.New("channel closed")}
	pub := newTestPublisher(ch)

	err := pub.Publish(context.Background(), domain.ActionIngested, &domain.Article{ID: 1})
	assert.ErrorContains(t, err, "channel closed")
}

func TestRabbitMQ_Close(t *testing.T) {
	ch := &recordingChannel{}
	pub := newTestPublisher(ch)

	assert.NoError(t, pub.Close())
	assert.True(t, ch.closed)
}
