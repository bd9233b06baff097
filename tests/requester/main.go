package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL    = "http://localhost:8080/api/orders"
	knownEmail = "jane@example.com"
	knownSKU   = "WIDGET-001"
)

// гоняет смесь создания и чтения заказов, чтобы погонять кэш и склад под нагрузкой
func main() {
	var mu sync.Mutex
	var created []string

	for {
		var wg sync.WaitGroup
		for i, n := 0, rand.Intn(10); i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if rand.Intn(3) == 0 {
					if uid := doCreate(); uid != "" {
						mu.Lock()
						created = append(created, uid)
						mu.Unlock()
					}
					return
				}

				mu.Lock()
				id := randomID(12)
				if len(created) > 0 && rand.Intn(5) != 0 {
					id = created[rand.Intn(len(created))]
				}
				mu.Unlock()
				doGet(id)
			}()
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doCreate() string {
	body, _ := json.Marshal(map[string]any{
		"customer_email": knownEmail,
		"items": []map[string]any{
			{"sku": knownSKU, "quantity": 1 + rand.Intn(3)},
		},
	})

	resp, err := http.Post(baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return ""
	}
	defer resp.Body.Close()
	fmt.Println("POST", baseURL, "->", resp.Status)

	if resp.StatusCode != http.StatusCreated {
		return ""
	}

	var order struct {
		OrderUID string `json:"order_uid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return ""
	}
	return order.OrderUID
}

func doGet(id string) {
	url := baseURL + "/" + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
