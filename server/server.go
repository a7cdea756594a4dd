package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"pewpew/logger"
	"pewpew/utils"
	"pewpew/world"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/segmentio/ksuid"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

// subscriber is one websocket connection. Every subscriber receives frames and
// may also act as a controller by sending intents.
type subscriber struct {
	ID       string
	Messages chan []byte
	// kick ends the connection. It is safe to call more than once.
	kick func()
}

type event struct {
	ID      string
	Intents world.Intents
	Remove  bool
}

type Server struct {
	subscribers map[*subscriber]struct{}
	mu          sync.RWMutex
	serveMux    http.ServeMux
	events      chan *event
	done        chan struct{}

	world   *world.World
	history *world.FrameBuffer
	updates *world.UpdateBuffer
	latest  []byte

	start    time.Time
	lastTick time.Time
	lastBody uint64

	log *zap.SugaredLogger
}

func NewServer(cfg *utils.Config, log *zap.SugaredLogger) *Server {
	worldConfig := cfg.World()
	worldConfig.Log = log
	s := &Server{
		subscribers: make(map[*subscriber]struct{}),
		events:      make(chan *event, 1024),
		done:        make(chan struct{}),
		world:       world.New(worldConfig),
		history:     world.NewFrameBuffer(cfg.Server.History),
		updates:     world.NewUpdateBuffer(),
		log:         log,
	}

	s.serveMux.HandleFunc("/", s.onConnection)
	s.serveMux.HandleFunc("/debug/frame", s.onFrameRequest)
	s.serveMux.HandleFunc("/debug/pprof/", pprof.Index)
	s.serveMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	s.serveMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	s.serveMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	s.serveMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return s
}

// Start runs the simulation on a fixed ticker until ctx is done.
func (s *Server) Start(ctx context.Context, interval time.Duration) {
	go func() {
		defer close(s.done)
		defer sentry.Recover()

		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case now := <-tick.C:
				s.onTick(now)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// sendEvent queues e for the tick loop. It gives up once the loop has stopped.
func (s *Server) sendEvent(e *event) bool {
	select {
	case s.events <- e:
		return true
	case <-s.done:
		return false
	}
}

func (s *Server) onEvent(e *event) {
	if e.Remove {
		s.updates.Remove(e.ID)
		return
	}
	s.updates.Set(e.ID, e.Intents)
}

func (s *Server) onTick(now time.Time) {
	if s.start.IsZero() {
		s.start = now
		s.lastTick = now
	}

	for len(s.events) > 0 {
		s.onEvent(<-s.events)
	}

	frame := s.world.Update(world.Tick{
		Delta: float32(now.Sub(s.lastTick).Seconds()),
		Since: now.Sub(s.start),
	}, s.updates.Merged())
	s.lastTick = now
	s.mu.Lock()
	s.history.Add(frame)
	s.mu.Unlock()

	// Unchanged worlds are not rebroadcast. Spawns and despawns always are.
	body := xxh3.Hash(frame.Body())
	if body == s.lastBody && len(frame.Spawned) == 0 && len(frame.Despawned) == 0 {
		return
	}
	s.lastBody = body

	msg := frame.Marshal()
	s.mu.Lock()
	s.latest = msg
	s.mu.Unlock()
	s.publish(msg)
}

func (s *Server) addSubscriber(sub *subscriber) {
	s.mu.Lock()
	s.subscribers[sub] = struct{}{}
	if s.latest != nil {
		sub.Messages <- s.latest
	}
	s.mu.Unlock()
}

func (s *Server) removeSubscriber(sub *subscriber) {
	s.mu.Lock()
	delete(s.subscribers, sub)
	s.mu.Unlock()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveMux.ServeHTTP(w, r)
}

func (s *Server) onConnection(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{
			"localhost:8080",
		},
	})
	if err != nil {
		s.log.Warnw("websocket accept failed", "err", err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "")

	if err := s.handleConnection(r.Context(), c); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Infow("connection closed", "err", err)
	}
}

// onFrameRequest serves a buffered frame in wire format, the newest one
// unless ?tick= names an older tick.
func (s *Server) onFrameRequest(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	frame := s.history.Latest()
	if raw := r.URL.Query().Get("tick"); raw != "" {
		tick, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		frame, _ = s.history.At(tick)
	}
	if frame == nil {
		http.Error(w, "no such frame", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/x-protobuf")
	_, _ = w.Write(frame.Marshal())
}

func (s *Server) handleConnection(ctx context.Context, c *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := &subscriber{
		ID:       ksuid.New().String(),
		Messages: make(chan []byte, 1024),
		kick:     cancel,
	}
	s.addSubscriber(sub)
	defer s.removeSubscriber(sub)
	s.log.Infow("subscriber connected", "id", sub.ID)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				hub := sentry.CurrentHub().Clone()
				hub.ConfigureScope(func(scope *sentry.Scope) {
					scope.SetTag("subscriber", sub.ID)
				})
				hub.Recover(err)
				hub.Flush(5 * time.Second)
			}
		}()
		defer cancel()
		defer s.sendEvent(&event{ID: sub.ID, Remove: true})

		for {
			typ, b, err := c.Read(ctx)
			if err != nil {
				s.log.Debugw("read failed", "id", sub.ID, "err", err)
				return
			}
			if typ != websocket.MessageBinary {
				continue
			}
			intents, err := world.UnmarshalIntents(b)
			if err != nil {
				s.log.Warnw("bad intents message", "id", sub.ID, "err", err)
				continue
			}
			if !s.sendEvent(&event{ID: sub.ID, Intents: intents}) {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-sub.Messages:
			if err := c.Write(ctx, websocket.MessageBinary, msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Server) publish(msg []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for sub := range s.subscribers {
		select {
		case sub.Messages <- msg:
		default:
			s.log.Warnw("subscriber too slow, dropping", "id", sub.ID)
			if sub.kick != nil {
				sub.kick()
			}
		}
	}
}

func startStatsView(addr string) {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()
}

func Run(cfg *utils.Config) error {
	log := logger.Log
	l, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Server.Address, err)
	}
	log.Infof("Listening on http://%v", l.Addr())

	if cfg.Debug.StatsView {
		startStatsView(cfg.Debug.StatsViewAddr)
		log.Infof("statsview on http://%s/debug/statsview", cfg.Debug.StatsViewAddr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := NewServer(cfg, log)
	server.Start(ctx, cfg.TickInterval())
	s := &http.Server{
		Handler:      server,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.Serve(l)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		log.Errorw("server stopped", "err", err)
	case sig := <-sigs:
		log.Infof("terminating: %v", sig)
	}

	return s.Shutdown(ctx)
}
