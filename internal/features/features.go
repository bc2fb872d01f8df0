package features

// Stage mirrors the lifecycle buckets used for feature flags.
type Stage string

const (
	StageStable       Stage = "stable"
	StageBeta         Stage = "beta"
	StageExperimental Stage = "experimental"
	StageDeprecated   Stage = "deprecated"
	StageRemoved      Stage = "removed"
)

// Feature keys.
const (
	Completion      = "completion"
	Clock           = "clock"
	ConsoleGreeting = "console_greeting"
	Clipboard       = "clipboard"
)

// Spec describes a feature flag exposed by the CLI.
type Spec struct {
	Key            string
	Stage          Stage
	DefaultEnabled bool
}

// Specs lists every feature the terminal understands.
var Specs = []Spec{
	{Key: Completion, Stage: StageStable, DefaultEnabled: true},
	{Key: Clock, Stage: StageStable, DefaultEnabled: true},
	{Key: ConsoleGreeting, Stage: StageStable, DefaultEnabled: true},
	{Key: Clipboard, Stage: StageBeta, DefaultEnabled: false},
}

var known = func() map[string]Spec {
	m := make(map[string]Spec, len(Specs))
	for _, spec := range Specs {
		m[spec.Key] = spec
	}
	return m
}()

// IsKnown reports whether the feature key is recognized.
func IsKnown(key string) bool {
	_, ok := known[key]
	return ok
}

// StageFor returns the lifecycle stage for a feature, defaulting to experimental.
func StageFor(key string) Stage {
	if spec, ok := known[key]; ok {
		return spec.Stage
	}
	return StageExperimental
}

// DefaultEnabled reports the default value for the given feature key.
func DefaultEnabled(key string) bool {
	if spec, ok := known[key]; ok {
		return spec.DefaultEnabled
	}
	return false
}

// Set 是生效中的开关集合：默认值叠加配置文件与命令行覆盖。
type Set map[string]bool

// Resolve 依次叠加默认值与 overrides，未知 key 被忽略。
func Resolve(overrides ...map[string]bool) Set {
	out := make(Set, len(Specs))
	for _, spec := range Specs {
		out[spec.Key] = spec.DefaultEnabled
	}
	for _, o := range overrides {
		for key, enabled := range o {
			if IsKnown(key) {
				out[key] = enabled
			}
		}
	}
	return out
}

// Enabled 报告 key 是否开启；Set 为空时回落到默认值。
func (s Set) Enabled(key string) bool {
	if enabled, ok := s[key]; ok {
		return enabled
	}
	return DefaultEnabled(key)
}
