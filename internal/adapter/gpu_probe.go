package adapter

import "log/slog"

// GPUProvider detects one vendor's GPU tooling on the local host.
type GPUProvider interface {
	// Name returns the vendor name (e.g. "nvidia").
	Name() string

	// Detect returns true if the vendor tooling exists on the host.
	Detect(lookPath func(string) (string, error)) bool
}

// GPUProbe reports which GPU vendor tooling, if any, is installed.
type GPUProbe interface {
	// Vendor returns the first detected vendor name, or "" when none is found.
	Vendor() string
}

// NvidiaProvider detects the NVIDIA management tooling.
type NvidiaProvider struct{}

// Name returns "nvidia".
func (NvidiaProvider) Name() string {
	return "nvidia"
}

// Detect looks for nvidia-smi, which ships with the driver that NVML bindings load.
func (NvidiaProvider) Detect(lookPath func(string) (string, error)) bool {
	_, err := lookPath("nvidia-smi")
	return err == nil
}

// LocalGPUProbe checks registered providers in order against the local PATH.
type LocalGPUProbe struct {
	providers []GPUProvider
	lookPath  func(string) (string, error)
}

// NewLocalGPUProbe constructs a probe that checks the given providers in order,
// defaulting to NVIDIA only.
func NewLocalGPUProbe(runner CommandRunner, providers ...GPUProvider) *LocalGPUProbe {
	if len(providers) == 0 {
		providers = []GPUProvider{NvidiaProvider{}}
	}

	return &LocalGPUProbe{providers: providers, lookPath: runner.LookPath}
}

// Vendor returns the name of the first provider whose tooling is present.
func (p *LocalGPUProbe) Vendor() string {
	for _, provider := range p.providers {
		if provider.Detect(p.lookPath) {
			slog.Debug("gpu tooling detected", "vendor", provider.Name())
			return provider.Name()
		}
	}

	slog.Debug("no gpu tooling detected")

	return ""
}
