// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sidecar starts and stops the remote annotation service in a
// local container so the remote annotator backend has an endpoint to call.
//
// styloguard does not build the service image. Any image used with
// annotator.image must listen on the container port equal to
// annotator.port and serve AnnotatePath:
//
//	POST /annotate
//	Content-Type: application/json
//	Authorization: Bearer <annotator.api_key>   (optional)
//
//	{"text": "I am happy."}
//
// and answer 200 with a JSON AnnotatedDocument (pkg/types): "tokens"
// carrying text, lower, lemma, pos (Universal tag), is_stop and is_alpha;
// "sentences" and "noun_chunks" as {"start","end"} token spans that
// partition or index the token list; "entities" as spans with a "label".
// Non-2xx answers are failures; 429 and 503 are retried with backoff.
package sidecar

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	binDocker = "docker"
	binPodman = "podman"
)

const (
	// DefaultName is the container name used when Spec.Name is empty.
	DefaultName = "styloguard-annotator"

	// DefaultImage is the image tag annotator start looks for. It must be
	// built or pulled locally and satisfy the package contract.
	DefaultImage = "styloguard/annotator:latest"

	// DefaultPort is the published service port.
	DefaultPort = 8088

	// AnnotatePath is the route the service exposes.
	AnnotatePath = "/annotate"
)

// Spec describes the annotation service container.
type Spec struct {
	Image string
	Name  string

	// Port is published on localhost and mapped to the same container port.
	Port int
}

// Endpoint returns the annotate URL of a service published on port.
func Endpoint(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s", port, AnnotatePath)
}

// Runtime provides container operations: checking availability, verifying
// images, and starting or stopping the service container.
type Runtime interface {
	// Name returns the runtime name ("docker" or "podman").
	Name() string

	// Available reports whether the runtime binary exists on PATH and
	// responds to an info command.
	Available() bool

	// ImageExists checks whether the named image exists locally.
	ImageExists(image string) error

	// Start runs spec detached and returns the container id.
	Start(spec Spec) (string, error)

	// Stop stops and removes the named container.
	Stop(name string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// runtime implements Runtime for a specific container binary. Docker and
// Podman differ only in binary name and the image check subcommand.
type runtime struct {
	bin           string
	imageCheckCmd []string
	exec          executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "info") == nil
}

func (r *runtime) ImageExists(image string) error {
	args := make([]string, 0, len(r.imageCheckCmd)+1)
	args = append(args, r.imageCheckCmd...)
	args = append(args, image)

	if err := r.exec.RunSilent(r.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, r.bin, err)
	}
	return nil
}

func (r *runtime) Start(spec Spec) (string, error) {
	if spec.Image == "" {
		return "", errors.New("no annotator image configured")
	}
	if spec.Port <= 0 {
		return "", fmt.Errorf("invalid port %d", spec.Port)
	}
	name := spec.Name
	if name == "" {
		name = DefaultName
	}
	publish := fmt.Sprintf("127.0.0.1:%d:%d", spec.Port, spec.Port)
	args := []string{"run", "-d", "--rm", "--name", name, "-p", publish, spec.Image}

	out, err := r.exec.Output(r.bin, args...)
	if err != nil {
		return "", fmt.Errorf("starting %s container %s: %w", r.bin, spec.Image, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *runtime) Stop(name string) error {
	if name == "" {
		name = DefaultName
	}
	if err := r.exec.RunSilent(r.bin, "stop", name); err != nil {
		return fmt.Errorf("stopping %s container %s: %w", r.bin, name, err)
	}
	return nil
}

func newDockerRuntime(exec executor) *runtime {
	return &runtime{
		bin:           binDocker,
		imageCheckCmd: []string{"image", "inspect"},
		exec:          exec,
	}
}

func newPodmanRuntime(exec executor) *runtime {
	return &runtime{
		bin:           binPodman,
		imageCheckCmd: []string{"image", "exists"},
		exec:          exec,
	}
}

var defaultExec = &osExecutor{}

// DetectRuntime tries docker first, falls back to podman. Returns an error
// if neither runtime is available.
func DetectRuntime() (Runtime, error) {
	return detectRuntime(defaultExec)
}

func detectRuntime(exec executor) (Runtime, error) {
	docker := newDockerRuntime(exec)
	if docker.Available() {
		return docker, nil
	}

	podman := newPodmanRuntime(exec)
	if podman.Available() {
		return podman, nil
	}

	return nil, fmt.Errorf(
		"no container runtime available: neither %s nor %s found or operational",
		binDocker, binPodman,
	)
}
