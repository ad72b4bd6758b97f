package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Zachkp/wildsme/background"
	"github.com/Zachkp/wildsme/metrics"
	"github.com/Zachkp/wildsme/shell"
)

const (
	// settleInterval is how often an idle stream checks for the page coming
	// to rest.
	settleInterval = 100 * time.Millisecond
	// intensitySteps quantizes intensity; a full frame is sent only when the
	// step changes.
	intensitySteps = 20
	maxMessageSize = 4096
	pongWait       = 60 * time.Second
)

// Background layout at rest, for a client that has hydrated.
func (s *Server) handleBackground(c *gin.Context) {
	dark := s.preferences(c).Theme().IsDark()
	c.JSON(http.StatusOK, background.Render(s.gen.Elements(), 0, 0, dark))
}

// Static layout: positions and sizes of every element.
func (s *Server) handleLayout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"config":   s.gen.Config(),
		"elements": s.gen.Elements(),
	})
}

// Background frame for an explicit velocity and scroll offset.
func (s *Server) handleBackgroundFrame(c *gin.Context) {
	velocity, err := queryFloat(c, "velocity")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid velocity"})
		return
	}
	scrollY, err := queryFloat(c, "scroll")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scroll"})
		return
	}
	dark := s.preferences(c).Theme().IsDark()
	frame := background.Render(s.gen.Elements(), velocity, scrollY, dark)
	metrics.ScrollIntensity.Observe(frame.Intensity)
	c.JSON(http.StatusOK, frame)
}

func queryFloat(c *gin.Context, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// clientMessage is sent by the browser over the background stream.
type clientMessage struct {
	Type string  `json:"type"` // hydrate, scroll, theme
	Y    float64 `json:"y"`
	// T is when the browser saw the scroll, in milliseconds on its own
	// monotonic clock (performance.now). Zero means unknown.
	T        float64        `json:"t"`
	Dark     bool           `json:"dark"`
	Sections []shell.Bounds `json:"sections"`
}

// serverMessage is a frame pushed to the browser.
type serverMessage struct {
	Type   string           `json:"type"` // frame, transforms
	Active string           `json:"active"`
	Frame  background.Frame `json:"frame"`
}

// stream is the state of one background websocket.
type stream struct {
	scene    *background.Scene
	shell    *shell.Shell
	dark     bool
	sections []shell.Bounds
	step     int

	// base maps the browser clock onto server time, fixed by the first
	// timestamped sample.
	base   time.Time
	synced bool
}

func newStream(scene *background.Scene, sh *shell.Shell) *stream {
	return &stream{scene: scene, shell: sh, dark: sh.Theme().IsDark()}
}

// sampleTime places a browser timestamp on the server clock, so velocity
// follows when the page scrolled rather than when messages arrived.
func (st *stream) sampleTime(t float64, now time.Time) time.Time {
	if t <= 0 {
		return now
	}
	at := time.Duration(t * float64(time.Millisecond))
	if !st.synced {
		st.base = now.Add(-at)
		st.synced = true
	}
	return st.base.Add(at)
}

// handle applies a client message and returns the reply, if any.
func (st *stream) handle(msg clientMessage, now time.Time) (serverMessage, bool) {
	switch msg.Type {
	case "hydrate":
		st.scene.Hydrate()
		st.dark = msg.Dark
		st.sections = msg.Sections
		st.shell.OnScroll(st.scene.ScrollY(), st.sections)
		return st.full(), true
	case "theme":
		st.dark = msg.Dark
		return st.full(), true
	case "scroll":
		st.scene.Scroll(msg.Y, st.sampleTime(msg.T, now))
		st.shell.OnScroll(msg.Y, st.sections)
		return st.next(), true
	}
	return serverMessage{}, false
}

// settle lets the scene come to rest. It replies only when the intensity
// step changed.
func (st *stream) settle(now time.Time) (serverMessage, bool) {
	before := st.step
	st.scene.Settle(now)
	if st.stepOf(st.scene.Intensity()) == before {
		return serverMessage{}, false
	}
	return st.next(), true
}

// next sends the full frame when the intensity step moved, transforms only
// otherwise.
func (st *stream) next() serverMessage {
	if step := st.stepOf(st.scene.Intensity()); step != st.step && st.scene.Hydrated() {
		return st.full()
	}
	return serverMessage{Type: "transforms", Active: st.shell.Active(), Frame: st.scene.Transforms(st.dark)}
}

func (st *stream) full() serverMessage {
	st.step = st.stepOf(st.scene.Intensity())
	frame := st.scene.Frame(st.dark)
	metrics.ScrollIntensity.Observe(frame.Intensity)
	return serverMessage{Type: "frame", Active: st.shell.Active(), Frame: frame}
}

func (st *stream) stepOf(intensity float64) int {
	return int(intensity * intensitySteps)
}

func (s *Server) handleBackgroundStream(c *gin.Context) {
	sh := s.newShell(c, s.forms.peek(visitorID(c)))
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Background stream upgrade failed: %v", err)
		return
	}
	s.streams.Add(conn)
	metrics.BackgroundSessions.Inc()
	defer func() {
		s.streams.Remove(conn)
		metrics.BackgroundSessions.Dec()
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	messages := make(chan clientMessage)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(messages)
		for {
			var msg clientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("Background stream read error: %v", err)
				}
				return
			}
			conn.SetReadDeadline(time.Now().Add(pongWait))
			select {
			case messages <- msg:
			case <-done:
				return
			}
		}
	}()

	st := newStream(background.NewScene(s.gen), sh)
	ticker := time.NewTicker(settleInterval)
	defer ticker.Stop()

	for {
		var (
			reply serverMessage
			ok    bool
		)
		select {
		case msg, open := <-messages:
			if !open {
				return
			}
			reply, ok = st.handle(msg, time.Now())
		case now := <-ticker.C:
			reply, ok = st.settle(now)
		}
		if !ok {
			continue
		}
		if err := s.streams.WriteJSON(conn, reply); err != nil {
			log.Printf("Background stream write error: %v", err)
			return
		}
	}
}
