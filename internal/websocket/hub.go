package websocket

import (
	"encoding/json"
	"sync"

	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
)

// Client 접속 중인 파트너 세션
type Client struct {
	Hub      *Hub
	Conn     *Conn
	MemberID uint
	Send     chan []byte
}

// Hub 파트너별 웹소켓 세션 관리자
// 승인/거부/정지 이벤트를 접속 중인 파트너에게 밀어준다
type Hub struct {
	// MemberID -> []*Client (멀티 디바이스 지원)
	clients map[uint][]*Client

	register   chan *Client
	unregister chan *Client
	push       chan *pushMessage

	mu sync.RWMutex
}

type pushMessage struct {
	MemberID uint
	Message  []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint][]*Client),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		push:       make(chan *pushMessage, 1024),
	}
}

// Run Hub 실행 (서버 기동 시 고루틴으로 호출)
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.MemberID] = append(h.clients[client.MemberID], client)
			h.mu.Unlock()
			logger.Info("WebSocket client registered", map[string]interface{}{
				"member_id":      client.MemberID,
				"total_sessions": len(h.clients[client.MemberID]),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clientList, ok := h.clients[client.MemberID]; ok {
				newList := make([]*Client, 0, len(clientList))
				for _, c := range clientList {
					if c != client {
						newList = append(newList, c)
					}
				}
				if len(newList) == 0 {
					delete(h.clients, client.MemberID)
				} else {
					h.clients[client.MemberID] = newList
				}
				close(client.Send)
			}
			h.mu.Unlock()
			logger.Info("WebSocket client unregistered", map[string]interface{}{
				"member_id": client.MemberID,
			})

		case message := <-h.push:
			h.mu.RLock()
			if clientList, ok := h.clients[message.MemberID]; ok {
				for _, client := range clientList {
					select {
					case client.Send <- message.Message:
					default:
						// Send 채널이 막혀있음 - 비동기로 정리
						go h.Unregister(client)
						logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
							"member_id": message.MemberID,
						})
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// PushToMember 접속 중인 파트너의 모든 세션에 이벤트 전송
// 미접속이거나 버퍼가 가득 차면 이벤트는 버려진다 (알림 자체는 DB에 남음)
func (h *Hub) PushToMember(memberID uint, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal push payload", err, map[string]interface{}{
			"member_id": memberID,
		})
		return
	}

	select {
	case h.push <- &pushMessage{MemberID: memberID, Message: data}:
	default:
		logger.Warn("Push channel full, event dropped", map[string]interface{}{
			"member_id": memberID,
		})
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// IsMemberOnline 파트너 접속 여부 확인
func (h *Hub) IsMemberOnline(memberID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[memberID]
	return ok
}
