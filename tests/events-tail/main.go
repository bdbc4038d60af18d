// events-tail читает топик событий заказов и печатает их, пока не придёт сигнал.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SergeyBogomolovv/checkout-service/internal/events"
	"github.com/segmentio/kafka-go"
)

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated broker list")
	topic := flag.String("topic", "orders", "topic to read")
	group := flag.String("group", "events-tail", "consumer group")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(*brokers, ","),
		GroupID: *group,
		Topic:   *topic,
	})
	defer reader.Close()

	for {
		m, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Println("failed to fetch message:", err)
			continue
		}

		var msg events.Message
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			log.Printf("skipping malformed event at offset %d: %v", m.Offset, err)
		} else {
			log.Printf("%s order=%d user=%d %q", msg.Type, msg.OrderID, msg.UserID, msg.Message)
		}

		if err := reader.CommitMessages(ctx, m); err != nil {
			log.Println("failed to commit message:", err)
		}
	}
}
