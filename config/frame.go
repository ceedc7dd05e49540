package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/taskgraph/gapi"
	"github.com/katalvlaran/taskgraph/resource"
	"github.com/katalvlaran/taskgraph/taskgraph"
)

var resourceUIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]+\+*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("resourceuid", func(fl validator.FieldLevel) bool {
		return resourceUIDPattern.MatchString(fl.Field().String())
	})

	return v
}

// ResourceConfig declares one GPUResource reference within a pass.
type ResourceConfig struct {
	UID   string `yaml:"uid" validate:"required,resourceuid"`
	Usage string `yaml:"usage" validate:"required,oneof=Nothing Present Attachment ShaderRead ShaderWrite"`
}

// PassConfig declares one pass within a frame.
type PassConfig struct {
	Name    string           `yaml:"name" validate:"required"`
	Inputs  []ResourceConfig `yaml:"inputs" validate:"dive"`
	Outputs []ResourceConfig `yaml:"outputs" validate:"dive"`
}

// FrameConfig is one frame's worth of pass declarations, loaded from YAML.
type FrameConfig struct {
	Domain string       `yaml:"domain" validate:"required,oneof=graphics compute transfer"`
	Passes []PassConfig `yaml:"passes" validate:"required,dive"`
}

// Load reads and validates the frame configuration at path.
func Load(path string) (*FrameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: Load: %w", err)
	}

	var cfg FrameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: Load: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: Load: %w: %w", ErrInvalidFrame, err)
	}

	return &cfg, nil
}

// ExecutionDomain converts the frame's declared domain string to
// gapi.ExecutionDomain.
func (c *FrameConfig) ExecutionDomain() gapi.ExecutionDomain {
	switch c.Domain {
	case "compute":
		return gapi.DomainCompute
	case "transfer":
		return gapi.DomainTransfer
	default:
		return gapi.DomainGraphics
	}
}

// ToPasses converts every declared PassConfig into a taskgraph.Pass
// with a no-op Execute callback, ready to be added to a GPUTaskGraph by
// a caller that supplies the real recording logic per pass (by name).
func (c *FrameConfig) ToPasses() ([]taskgraph.Pass, error) {
	passes := make([]taskgraph.Pass, 0, len(c.Passes))
	for _, p := range c.Passes {
		inputs, err := toResources(p.Inputs)
		if err != nil {
			return nil, fmt.Errorf("config: ToPasses: pass %q: %w", p.Name, err)
		}
		outputs, err := toResources(p.Outputs)
		if err != nil {
			return nil, fmt.Errorf("config: ToPasses: pass %q: %w", p.Name, err)
		}

		passes = append(passes, taskgraph.Pass{
			Name:    p.Name,
			Inputs:  inputs,
			Outputs: outputs,
			Execute: func(taskgraph.Recorder) error { return nil },
		})
	}

	return passes, nil
}

func toResources(cfgs []ResourceConfig) ([]taskgraph.GPUResource, error) {
	out := make([]taskgraph.GPUResource, 0, len(cfgs))
	for _, rc := range cfgs {
		usage, err := parseUsage(rc.Usage)
		if err != nil {
			return nil, err
		}
		out = append(out, taskgraph.GPUResource{
			Virtual: resource.New(rc.UID),
			Usage:   usage,
			Stage:   defaultStage(usage),
		})
	}

	return out, nil
}

func parseUsage(s string) (gapi.Usage, error) {
	switch s {
	case "Nothing":
		return gapi.UsageNothing, nil
	case "Present":
		return gapi.UsagePresent, nil
	case "Attachment":
		return gapi.UsageAttachment, nil
	case "ShaderRead":
		return gapi.UsageShaderRead, nil
	case "ShaderWrite":
		return gapi.UsageShaderWrite, nil
	default:
		return 0, fmt.Errorf("config: parseUsage: %w: unknown usage %q", ErrInvalidFrame, s)
	}
}

// defaultStage picks a representative pipeline stage for a usage when
// the YAML schema doesn't carry one explicitly — config describes
// frame structure, not fine-grained stage tuning, which remains a
// caller concern for performance-sensitive passes.
func defaultStage(u gapi.Usage) gapi.PipelineStage {
	switch u {
	case gapi.UsageAttachment:
		return gapi.StageColorAttachmentOutput
	case gapi.UsageShaderRead, gapi.UsageShaderWrite:
		return gapi.StageFragmentShader
	case gapi.UsagePresent:
		return gapi.StageBottomOfPipe
	default:
		return gapi.StageTopOfPipe
	}
}
