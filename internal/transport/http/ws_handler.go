package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// WSHandler runs one quiz per websocket connection: questions go out one at a
// time, answers come back, and progress is checkpointed after each answer so
// a dropped connection can resume with ?progressId=.
type WSHandler struct {
	runs     *app.RunService
	upgrader websocket.Upgrader
}

func NewWSHandler(runs *app.RunService) *WSHandler {
	return &WSHandler{
		runs: runs,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Score int `json:"score"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type startedPayload struct {
	ProgressID     string          `json:"progressId"`
	User           domain.UserInfo `json:"user"`
	CurrentIndex   int             `json:"currentQuestionIndex"`
	TotalQuestions int             `json:"totalQuestions"`
	Resumed        bool            `json:"resumed"`
}

type questionPayload struct {
	Index    int             `json:"index"`
	Total    int             `json:"total"`
	Question domain.Question `json:"question"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and drives a quiz run over them.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	progressID := q.Get("progressId")
	user := domain.UserInfo{
		Email:   q.Get("email"),
		Name:    q.Get("name"),
		Company: q.Get("company"),
		Role:    q.Get("role"),
	}
	if progressID == "" && user.Email == "" {
		http.Error(w, "missing email or progressId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	var progress domain.Progress
	resumed := progressID != ""
	if resumed {
		progress, err = h.runs.Resume(ctx, progressID)
	} else {
		progress, err = h.runs.Start(ctx, user)
	}
	if err != nil {
		h.send(conn, "error", errorPayload{Message: err.Error()})
		return
	}

	total := h.runs.TotalQuestions()
	if !h.send(conn, "started", startedPayload{
		ProgressID:     progress.ID,
		User:           progress.User,
		CurrentIndex:   progress.CurrentIndex,
		TotalQuestions: total,
		Resumed:        resumed,
	}) {
		return
	}

	next, pending := h.runs.Current(progress)
	if !pending {
		// every answer was saved but storing the result failed last time
		outcome, err := h.runs.Finish(ctx, progress.ID)
		if err != nil {
			h.send(conn, "error", errorPayload{Message: err.Error()})
			return
		}
		h.finish(conn, outcome)
		return
	}
	if !h.send(conn, "question", questionPayload{Index: progress.CurrentIndex, Total: total, Question: next}) {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("ws read error for run %s: %v", progress.ID, err)
			}
			return
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.send(conn, "error", errorPayload{Message: "invalid answer payload"})
				continue
			}
			outcome, err := h.runs.Answer(ctx, progress.ID, payload.Score)
			if err != nil {
				if !h.send(conn, "error", errorPayload{Message: err.Error()}) || errors.Is(err, domain.ErrProgressNotFound) {
					return
				}
				continue
			}
			if outcome.Completed != nil && !h.send(conn, "sectionComplete", outcome.Completed) {
				return
			}
			if outcome.Submission != nil {
				h.finish(conn, outcome)
				return
			}
			if outcome.Next != nil && !h.send(conn, "question", questionPayload{
				Index:    outcome.Progress.CurrentIndex,
				Total:    total,
				Question: *outcome.Next,
			}) {
				return
			}
		case "discard":
			if err := h.runs.Discard(ctx, progress.ID); err != nil {
				h.send(conn, "error", errorPayload{Message: err.Error()})
				return
			}
			h.close(conn, "discarded")
			return
		default:
			h.send(conn, "error", errorPayload{Message: "unsupported message type"})
		}
	}
}

func (h *WSHandler) finish(conn *websocket.Conn, outcome app.AnswerOutcome) {
	if h.send(conn, "result", outcome.Submission) {
		h.close(conn, "completed")
	}
}

func (h *WSHandler) send(conn *websocket.Conn, typ string, payload any) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(outboundMessage[any]{Type: typ, Payload: payload}); err != nil {
		log.Printf("ws write error: %v", err)
		return false
	}
	return true
}

func (h *WSHandler) close(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
