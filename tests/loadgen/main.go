// loadgen шлёт конкурентные оформления заказов в запущенный сервис
// (по умолчанию in-memory хранилище с демо-данными) и печатает сводку по статусам.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type line struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type placeOrder struct {
	Items    []line `json:"items"`
	IsPickup bool   `json:"isPickup"`
}

type order struct {
	ID int64 `json:"id"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service address")
	workers := flag.Int("workers", 8, "concurrent callers")
	users := flag.Int("users", 10, "user ids 1..N")
	products := flag.Int("products", 5, "product ids 1..N")
	cancelRate := flag.Float64("cancel", 0.2, "share of placed orders canceled right away")
	duration := flag.Duration("duration", 30*time.Second, "run time")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *duration)
	defer cancel()

	client := &http.Client{Timeout: 10 * time.Second}
	var (
		mu       sync.Mutex
		statuses = make(map[string]int)
	)
	count := func(op string, status int) {
		mu.Lock()
		statuses[op+" "+strconv.Itoa(status)]++
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	for range *workers {
		g.Go(func() error {
			for ctx.Err() == nil {
				userID := strconv.Itoa(rand.IntN(*users) + 1)
				body := placeOrder{
					IsPickup: true,
					Items:    []line{{ProductID: int64(rand.IntN(*products) + 1), Quantity: rand.IntN(3) + 1}},
				}

				status, placed, err := post(ctx, client, *baseURL+"/orders", userID, body)
				if err != nil {
					if ctx.Err() != nil {
						return nil
					}
					log.Println("request failed:", err)
					continue
				}
				count("place", status)

				if status == http.StatusCreated && rand.Float64() < *cancelRate {
					url := fmt.Sprintf("%s/orders/%d/cancel", *baseURL, placed.ID)
					status, err := patch(ctx, client, url, userID)
					if err == nil {
						count("cancel", status)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for k, v := range statuses {
		fmt.Printf("%-12s %d\n", k, v)
	}
}

func post(ctx context.Context, client *http.Client, url, userID string, body placeOrder) (int, order, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, order{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return 0, order{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return 0, order{}, err
	}
	defer resp.Body.Close()

	var o order
	if resp.StatusCode == http.StatusCreated {
		if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
			return resp.StatusCode, order{}, err
		}
	}
	return resp.StatusCode, o, nil
}

func patch(ctx context.Context, client *http.Client, url, userID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("X-User-ID", userID)

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
