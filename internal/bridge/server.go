// Package bridge exposes block instances over gRPC so an out-of-process
// simulation host can drive the full lifecycle remotely: CreateInstance
// configures a block, Start loads its model, Step runs one tick, Terminate
// releases it.
package bridge

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	blk "github.com/SyedDaiam9101/policy-block/internal/block"
	"github.com/SyedDaiam9101/policy-block/internal/cache"
	"github.com/SyedDaiam9101/policy-block/internal/host"
	"github.com/SyedDaiam9101/policy-block/internal/metrics"
	"github.com/SyedDaiam9101/policy-block/internal/middleware"
	pb "github.com/SyedDaiam9101/policy-block/proto/blockpb"
)

// snapshotTTL bounds how long a stale action snapshot stays readable.
const snapshotTTL = 30 * time.Second

// BlockFactory produces a fresh block for each created instance.
type BlockFactory func() *blk.Block

// Defaults fills in block parameters a create request leaves unset. They
// come from the daemon configuration; zero values mean no default.
type Defaults struct {
	ModelPath      string
	ObservationDim int
	ActionDim      int
}

// Server implements the BlockHostServer interface. Each created instance
// gets its own driver; the host contract of non-concurrent invocation per
// instance is upheld by the per-instance mutex.
type Server struct {
	pb.UnimplementedBlockHostServer

	newBlock BlockFactory
	cache    *cache.Cache
	defaults Defaults

	mu        sync.Mutex
	instances map[string]*instance
}

type instance struct {
	mu     sync.Mutex
	driver *host.Driver
	obsDim int
	actDim int
}

// New creates a Server. The factory must not be nil; cache may be nil to
// disable action snapshots.
func New(newBlock BlockFactory, cache *cache.Cache, defaults Defaults) *Server {
	return &Server{
		newBlock:  newBlock,
		cache:     cache,
		defaults:  defaults,
		instances: make(map[string]*instance),
	}
}

// CreateInstance configures a new block instance from the request
// parameters and returns its id. Fields the request leaves unset fall back
// to the daemon defaults. Configuration failures surface as InvalidArgument
// and leave nothing behind.
func (s *Server) CreateInstance(ctx context.Context, req *pb.CreateInstanceRequest) (*pb.CreateInstanceReply, error) {
	if req == nil {
		return nil, invalidArgumentError("request cannot be nil")
	}
	if s.newBlock == nil {
		return nil, failedPreconditionError("block factory not initialized")
	}

	modelPath := req.GetModelPath()
	if modelPath == "" {
		modelPath = s.defaults.ModelPath
	}
	obsDim := int(req.GetObservationDim())
	if obsDim == 0 {
		obsDim = s.defaults.ObservationDim
	}
	actDim := int(req.GetActionDim())
	if actDim == 0 {
		actDim = s.defaults.ActionDim
	}

	driver := host.NewDriver(s.newBlock(),
		host.StringParam(modelPath),
		host.IntParam(obsDim),
		host.IntParam(actDim),
	)
	if err := driver.Configure(); err != nil {
		return nil, toStatusError(err)
	}

	id := uuid.New().String()
	inst := &instance{
		driver: driver,
		obsDim: obsDim,
		actDim: actDim,
	}

	s.mu.Lock()
	s.instances[id] = inst
	s.mu.Unlock()
	metrics.InstanceCreated()

	log.Printf("[%s] instance %s configured: model=%s obs_dim=%d act_dim=%d",
		middleware.GetRequestID(ctx), id, modelPath, obsDim, actDim)

	return &pb.CreateInstanceReply{InstanceId: id}, nil
}

// Start loads the instance's model. A load failure is terminal for the
// instance: subsequent Step calls fail fast with the not-loaded condition.
func (s *Server) Start(ctx context.Context, req *pb.StartRequest) (*pb.StartReply, error) {
	inst, err := s.lookup(req.GetInstanceId())
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	if err := inst.driver.Start(); err != nil {
		log.Printf("[%s] instance %s start failed: %v", middleware.GetRequestID(ctx), req.GetInstanceId(), err)
		return nil, toStatusError(err)
	}
	metrics.ModelLoaded()
	return &pb.StartReply{}, nil
}

// Step feeds one observation through the instance and returns the action.
func (s *Server) Step(ctx context.Context, req *pb.StepRequest) (*pb.StepReply, error) {
	inst, err := s.lookup(req.GetInstanceId())
	if err != nil {
		return nil, err
	}

	obs := req.GetObservation()
	if len(obs) != inst.obsDim {
		return nil, invalidArgumentError("observation has wrong length: got %d, expected %d", len(obs), inst.obsDim)
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	if inst.driver.State() == host.StateConfigured {
		return nil, failedPreconditionError("instance not started: model not loaded")
	}

	in := inst.driver.Instance()
	in.SetInput(0, obs)

	stepStart := time.Now()
	stepErr := inst.driver.Step()
	metrics.RecordStepLatency(time.Since(stepStart).Seconds())

	if stepErr != nil {
		metrics.RecordStep("error")
		log.Printf("[%s] instance %s step failed: %v", middleware.GetRequestID(ctx), req.GetInstanceId(), stepErr)
		return nil, toStatusError(stepErr)
	}
	metrics.RecordStep("ok")

	action := make([]float64, inst.actDim)
	copy(action, in.Output(0))

	if s.cache != nil {
		if err := s.cache.SetAction(ctx, req.GetInstanceId(), action, snapshotTTL); err != nil {
			// Snapshots are best effort; the step result is already computed.
			log.Printf("[%s] instance %s snapshot failed: %v", middleware.GetRequestID(ctx), req.GetInstanceId(), err)
		}
	}

	return &pb.StepReply{Action: action}, nil
}

// Terminate releases the instance's resources and forgets it. Terminating
// an unknown id is a no-op so retried terminations stay idempotent.
func (s *Server) Terminate(ctx context.Context, req *pb.TerminateRequest) (*pb.TerminateReply, error) {
	id := req.GetInstanceId()

	s.mu.Lock()
	inst, ok := s.instances[id]
	if ok {
		delete(s.instances, id)
	}
	s.mu.Unlock()

	if !ok {
		return &pb.TerminateReply{}, nil
	}
	metrics.InstanceTerminated()

	inst.mu.Lock()
	defer inst.mu.Unlock()
	if inst.driver.State() == host.StateLoaded {
		metrics.ModelUnloaded()
	}
	if err := inst.driver.Terminate(); err != nil {
		return nil, toStatusError(err)
	}

	log.Printf("[%s] instance %s terminated", middleware.GetRequestID(ctx), id)
	return &pb.TerminateReply{}, nil
}

// Shutdown terminates every remaining instance. Called on daemon exit.
func (s *Server) Shutdown() {
	s.mu.Lock()
	instances := s.instances
	s.instances = make(map[string]*instance)
	s.mu.Unlock()

	for id, inst := range instances {
		inst.mu.Lock()
		if inst.driver.State() == host.StateLoaded {
			metrics.ModelUnloaded()
		}
		if err := inst.driver.Terminate(); err != nil {
			log.Printf("instance %s terminate failed during shutdown: %v", id, err)
		}
		inst.mu.Unlock()
		metrics.InstanceTerminated()
	}
}

func (s *Server) lookup(id string) (*instance, error) {
	if id == "" {
		return nil, invalidArgumentError("instance_id cannot be empty")
	}
	s.mu.Lock()
	inst, ok := s.instances[id]
	s.mu.Unlock()
	if !ok {
		return nil, notFoundError("unknown instance %s", id)
	}
	return inst, nil
}
