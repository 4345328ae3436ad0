package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Server answers exactly one request per connection from a shared RouteTable.
// Every accepted connection gets its own goroutine; there is no pool, no deadline and
// no drain on exit.
type Server struct {
	Name           string
	Routes         RouteTable
	Logger         *slog.Logger
	ReadBufferSize int

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	instruments    instruments
}

type Option func(server *Server)

func WithLogger(logger *slog.Logger) Option {
	return func(server *Server) {
		server.Logger = logger
	}
}

func WithReadBufferSize(size int) Option {
	return func(server *Server) {
		if size > 0 {
			server.ReadBufferSize = size
		}
	}
}

func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(server *Server) {
		server.tracerProvider = provider
	}
}

func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(server *Server) {
		server.meterProvider = provider
	}
}

func NewServer(name string, routes RouteTable, options ...Option) *Server {
	server := &Server{
		Name:           name,
		Routes:         routes,
		ReadBufferSize: DefaultReadBufferSize,
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}

	for _, option := range options {
		option(server)
	}

	if server.Logger == nil {
		server.Logger = otelslog.NewLogger(instrumentationName)
	}

	server.instruments = newInstruments(server.tracerProvider, server.meterProvider)

	return server
}

// ListenAndServe binds addr and serves it. Only a failed bind is reported as ErrBind.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrBind, addr, err)
	}

	return s.Serve(listener)
}

// Serve accepts connections until the listener is closed by its owner.
func (s *Server) Serve(listener net.Listener) error {
	s.Logger.Info("listening", "server", s.Name, "address", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			s.Logger.Error("failed to accept connection", "server", s.Name, "error", err)
			continue
		}

		go s.ServeConn(conn)
	}
}

// ServeConn handles a single request and closes conn. Failures are logged and end this
// connection only; a request that fails to parse gets no response.
func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	connId := uuid.NewString()

	ctx, span := s.instruments.tracer.Start(context.Background(), "ServeConn",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("hddp.connection.id", connId),
			attribute.String("network.peer.address", conn.RemoteAddr().String()),
		),
	)
	defer span.End()

	s.instruments.connections.Add(ctx, 1)

	if err := s.serve(ctx, conn); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		s.instruments.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", errorKind(err))))
		s.Logger.ErrorContext(ctx, "abandoning connection", "connection", connId, "error", err)
	}
}

func (s *Server) serve(ctx context.Context, conn net.Conn) error {
	buf := make([]byte, s.ReadBufferSize)

	n, err := conn.Read(buf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: empty read", ErrRead)
	}

	req, err := ParseRequest(buf[:n])
	if err != nil {
		return err
	}

	res, matched := s.Routes.Lookup(req.Method, req.Path)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.path", req.Path),
		attribute.Bool("hddp.route.matched", matched),
	)
	s.instruments.requests.Add(ctx, 1, metric.WithAttributes(attribute.Bool("matched", matched)))
	s.Logger.InfoContext(ctx, "request", "method", req.Method, "path", req.Path, "matched", matched)

	if _, err := conn.Write(res); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
