package version

var (
	// GitCommit is the current HEAD set using ldflags.
	GitCommit string

	// Version is the built softwares version.
	Version = InductionSemVer
)

func init() {
	if GitCommit != "" {
		Version += "-" + GitCommit
	}
}

const (
	// InductionSemVer is the current version of the induction pipeline.
	// It's the Semantic Version of the software.
	InductionSemVer = "0.3.0"
)

// Protocol is used for implementation agnostic versioning.
type Protocol uint64

// Uint64 returns the Protocol version as a uint64.
func (p Protocol) Uint64() uint64 {
	return uint64(p)
}

var (
	// QueuesProtocol versions the encoding of canister queue snapshots.
	QueuesProtocol Protocol = 1

	// StreamProtocol versions stream routing and induction, including reject
	// codes.
	StreamProtocol Protocol = 1
)

// Info describes a build.
type Info struct {
	Version        string `json:"version"`
	GitCommit      string `json:"git_commit,omitempty"`
	QueuesProtocol uint64 `json:"queues_protocol"`
	StreamProtocol uint64 `json:"stream_protocol"`
}

// Current returns the Info of the running binary.
func Current() Info {
	return Info{
		Version:        Version,
		GitCommit:      GitCommit,
		QueuesProtocol: QueuesProtocol.Uint64(),
		StreamProtocol: StreamProtocol.Uint64(),
	}
}
