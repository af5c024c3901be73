package rt

import "fmt"

// Config holds the runtime tunables the original C runtime baked in as
// #define constants: symbol bucket count, integer-box pool size,
// map promotion/rehash thresholds. NewConfig returns the documented
// defaults; callers may override entries before passing the config to
// NewRuntimeWithConfig.
type Config map[string]*cfgVal

// NewConfig creates a configuration primed with the defaults documented
// in spec.md §4.4, §4.5 and §4.11.
func NewConfig() *Config {
	m := make(Config)
	m.SetInt("symbol.bucket_count", 128)
	m.SetInt("intpool.size", 1024)
	m.SetInt("map.promote_threshold", 8)
	m.SetInt("map.default_bucket_count", 16)
	m.SetFloat("map.rehash_load_factor", 0.75)
	return &m
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_Float
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_Float:     "float",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asFloat  float64
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("can't retrieve `%s` from `%s` setting", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Bool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Int)
	(*c)[path].asInt = v
}

func (c *Config) SetFloat(path string, v float64) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Float)
	(*c)[path].asFloat = v
}

func (c *Config) SetString(path string, v string) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_String)
	(*c)[path].asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("int setting `%s` does not exist", path))
}

func (c *Config) GetFloat(path string) float64 {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Float)
		return val.asFloat
	}
	panic(fmt.Sprintf("float setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("string setting `%s` does not exist", path))
}
