// Package monitoring turns a simulation into a server so that a running
// simulation can be inspected and controlled from outside.
package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"

	"github.com/sarchlab/mm1sim/timing"
)

// A QueueSampler is a queue that can report its occupancy.
type QueueSampler interface {
	Name() string
	Capacity() int
	Len() int
	OccupancyMask() []bool
}

// Monitor exposes the state of a running simulation over HTTP.
type Monitor struct {
	engine      timing.Engine
	portNumber  int
	openBrowser bool

	queuesLock sync.Mutex
	queues     []QueueSampler
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowserLaunch makes StartServer open the dashboard URL in the default
// browser.
func (m *Monitor) WithBrowserLaunch() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterEngine registers the engine that is used in the simulation.
func (m *Monitor) RegisterEngine(e timing.Engine) {
	m.engine = e
}

// RegisterQueue registers a queue to be monitored.
func (m *Monitor) RegisterQueue(q QueueSampler) {
	m.queuesLock.Lock()
	defer m.queuesLock.Unlock()

	m.queues = append(m.queues, q)
}

// StartServer starts the monitoring server on the configured port, or a
// random free port when none is set.
func (m *Monitor) StartServer() {
	r := m.router()

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	go func() {
		err := http.Serve(listener, r)
		dieOnErr(err)
	}()

	if m.openBrowser {
		_ = browser.OpenURL(url)
	}
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/pause", m.pauseEngine)
	r.HandleFunc("/api/continue", m.continueEngine)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/queues", m.listQueues)

	return r
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	now := m.engine.CurrentTime()
	fmt.Fprintf(w, "{\"now\":%d}", now)
}

// QueueStatus is the JSON shape served for one monitored queue.
type QueueStatus struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Length   int    `json:"length"`
	Mask     []bool `json:"mask"`
}

func (m *Monitor) listQueues(w http.ResponseWriter, _ *http.Request) {
	m.queuesLock.Lock()
	statuses := make([]QueueStatus, 0, len(m.queues))
	for _, q := range m.queues {
		statuses = append(statuses, QueueStatus{
			Name:     q.Name(),
			Capacity: q.Capacity(),
			Length:   q.Len(),
			Mask:     q.OccupancyMask(),
		})
	}
	m.queuesLock.Unlock()

	err := json.NewEncoder(w).Encode(statuses)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
