package apidesc

import (
	"fmt"
	"os"
	"strings"

	"github.com/zzl/go-cppapi-gen/cppmodel"
	"gopkg.in/yaml.v3"
)

// File mirrors one YAML declaration file, the serialized form the
// out-of-scope native-source parser hands to this system.
type File struct {
	Unit      string          `yaml:"unit"`
	Enums     []*EnumSpec     `yaml:"enums"`
	Classes   []*ClassSpec    `yaml:"classes"`
	Functions []*FunctionSpec `yaml:"functions"`

	path string
}

type EnumSpec struct {
	Path  string `yaml:"path"`
	Flags bool   `yaml:"flags"`
}

type ClassSpec struct {
	Path      string          `yaml:"path"`
	FlagsOf   string          `yaml:"flags_of"`
	FlagsBase string          `yaml:"flags_base"`
	Methods   []*FunctionSpec `yaml:"methods"`
}

type FunctionSpec struct {
	Name           string     `yaml:"name"`
	Kind           string     `yaml:"kind"` //method (default), constructor, destructor, operator
	Operator       string     `yaml:"operator"`
	Const          bool       `yaml:"const"`
	Static         bool       `yaml:"static"`
	Virtual        bool       `yaml:"virtual"`
	Pure           bool       `yaml:"pure"`
	Signal         bool       `yaml:"signal"`
	Slot           bool       `yaml:"slot"`
	Visibility     string     `yaml:"visibility"`
	Returns        string     `yaml:"returns"`
	Variadic       bool       `yaml:"variadic"`
	TemplateParams []string   `yaml:"template_params"`
	Args           []*ArgSpec `yaml:"args"`

	line int
}

func (this *FunctionSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain FunctionSpec
	if err := value.Decode((*plain)(this)); err != nil {
		return err
	}
	this.line = value.Line
	return nil
}

type ArgSpec struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default bool   `yaml:"default"`
}

// ValidationError aggregates everything wrong with a set of declaration
// files.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "declaration files: invalid input"
	}
	var b strings.Builder
	b.WriteString("declaration validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Loader reads declaration files and resolves them into cppmodel
// declarations. All files are read before any type string is parsed, so
// cross-file type references resolve.
type Loader struct {
	registry *TypeRegistry
	files    []*File
	issues   []string
}

func NewLoader() *Loader {
	return &Loader{registry: NewTypeRegistry()}
}

func (this *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("apidesc: read %s: %w", path, err)
	}
	return this.LoadData(path, data)
}

func (this *Loader) LoadData(path string, data []byte) error {
	file := &File{path: path}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil {
		return fmt.Errorf("apidesc: parse %s: %w", path, err)
	}
	if file.Unit == "" {
		this.addIssue(path, 0, "missing unit")
	}
	for _, enum := range file.Enums {
		if enum.Path == "" {
			this.addIssue(path, 0, "enum with no path")
			continue
		}
		this.registry.AddEnum(enum.Path)
	}
	for _, class := range file.Classes {
		if class.Path == "" {
			this.addIssue(path, 0, "class with no path")
			continue
		}
		flagsBase := cppmodel.NumUInt
		if class.FlagsBase != "" {
			kind, ok := numericNames[class.FlagsBase]
			if !ok {
				this.addIssue(path, 0, fmt.Sprintf("class %s: unknown flags_base %q",
					class.Path, class.FlagsBase))
				continue
			}
			flagsBase = kind
		}
		if class.FlagsBase != "" && class.FlagsOf == "" {
			this.addIssue(path, 0, fmt.Sprintf("class %s: flags_base without flags_of", class.Path))
		}
		this.registry.AddClass(class.Path, class.FlagsOf, flagsBase)
	}
	this.files = append(this.files, file)
	return nil
}

// Resolve turns every loaded file into declarations, in file load order
// then declaration order. The returned order is the batch declaration
// order that naming depends on.
func (this *Loader) Resolve() ([]*cppmodel.Function, error) {
	var functions []*cppmodel.Function
	for _, file := range this.files {
		for _, class := range file.Classes {
			for _, method := range class.Methods {
				f := this.resolveMethod(file, class, method)
				if f != nil {
					functions = append(functions, f)
				}
			}
		}
		for _, spec := range file.Functions {
			f := this.resolveFree(file, spec)
			if f != nil {
				functions = append(functions, f)
			}
		}
	}
	if len(this.issues) > 0 {
		return nil, &ValidationError{Issues: this.issues}
	}
	return functions, nil
}

func (this *Loader) resolveMethod(file *File, class *ClassSpec, spec *FunctionSpec) *cppmodel.Function {
	member := &cppmodel.Member{
		Virtual:     spec.Virtual || spec.Pure,
		PureVirtual: spec.Pure,
		Const:       spec.Const,
		Static:      spec.Static,
		Signal:      spec.Signal,
		Slot:        spec.Slot,
	}

	switch spec.Visibility {
	case "", "public":
		member.Visibility = cppmodel.VisibilityPublic
	case "protected":
		member.Visibility = cppmodel.VisibilityProtected
	case "private":
		member.Visibility = cppmodel.VisibilityPrivate
	default:
		this.addIssue(file.path, spec.line, fmt.Sprintf("%s::%s: unknown visibility %q",
			class.Path, spec.Name, spec.Visibility))
		return nil
	}

	name := spec.Name
	switch spec.Kind {
	case "", "method":
		member.Kind = cppmodel.MethodKindRegular
		if name == "" {
			this.addIssue(file.path, spec.line, class.Path+": method with no name")
			return nil
		}
	case "constructor":
		member.Kind = cppmodel.MethodKindConstructor
		name = lastSegment(class.Path)
		if spec.Returns != "" {
			this.addIssue(file.path, spec.line, class.Path+": constructor with a return type")
			return nil
		}
		if spec.Const || spec.Static {
			this.addIssue(file.path, spec.line, class.Path+": constructor marked const or static")
			return nil
		}
	case "destructor":
		member.Kind = cppmodel.MethodKindDestructor
		name = "~" + lastSegment(class.Path)
		if len(spec.Args) > 0 || spec.Returns != "" {
			this.addIssue(file.path, spec.line, class.Path+": destructor with arguments or a return type")
			return nil
		}
	case "operator":
		member.Kind = cppmodel.MethodKindOperator
		op, ok := cppmodel.LookupOperatorName(spec.Operator)
		if !ok {
			this.addIssue(file.path, spec.line, fmt.Sprintf("%s: unknown operator %q",
				class.Path, spec.Operator))
			return nil
		}
		member.Operator = op
		name = "operator_" + spec.Operator
	default:
		this.addIssue(file.path, spec.line, fmt.Sprintf("%s::%s: unknown method kind %q",
			class.Path, spec.Name, spec.Kind))
		return nil
	}

	f := &cppmodel.Function{
		Path:     class.Path + "::" + name,
		Member:   member,
		Variadic: spec.Variadic,
		Unit:     file.Unit,
		Origin:   cppmodel.Origin{File: file.path, Line: spec.line},
	}
	if !this.resolveSignature(file, spec, f) {
		return nil
	}
	return f
}

func (this *Loader) resolveFree(file *File, spec *FunctionSpec) *cppmodel.Function {
	if spec.Name == "" {
		this.addIssue(file.path, spec.line, file.Unit+": free function with no name")
		return nil
	}
	if spec.Kind != "" && spec.Kind != "method" {
		this.addIssue(file.path, spec.line, fmt.Sprintf("%s: free function %s declared as %q",
			file.Unit, spec.Name, spec.Kind))
		return nil
	}
	f := &cppmodel.Function{
		Path:     spec.Name,
		Variadic: spec.Variadic,
		Unit:     file.Unit,
		Origin:   cppmodel.Origin{File: file.path, Line: spec.line},
	}
	if !this.resolveSignature(file, spec, f) {
		return nil
	}
	return f
}

func (this *Loader) resolveSignature(file *File, spec *FunctionSpec, f *cppmodel.Function) bool {
	ok := true
	if spec.Returns != "" {
		ret, err := this.registry.ParseType(spec.Returns, spec.TemplateParams)
		if err != nil {
			this.addIssue(file.path, spec.line, fmt.Sprintf("%s: return type: %v", f.Path, err))
			ok = false
		} else {
			f.ReturnType = ret
		}
	} else if f.Member == nil || f.Member.Kind == cppmodel.MethodKindRegular ||
		f.Member.Kind == cppmodel.MethodKindOperator {
		f.ReturnType = cppmodel.Void()
	}
	for n, arg := range spec.Args {
		if arg.Type == "" {
			this.addIssue(file.path, spec.line, fmt.Sprintf("%s: argument %d has no type", f.Path, n))
			ok = false
			continue
		}
		t, err := this.registry.ParseType(arg.Type, spec.TemplateParams)
		if err != nil {
			this.addIssue(file.path, spec.line, fmt.Sprintf("%s: argument %d: %v", f.Path, n, err))
			ok = false
			continue
		}
		name := arg.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", n)
		}
		f.Arguments = append(f.Arguments, &cppmodel.Argument{
			Name:       name,
			Type:       t,
			HasDefault: arg.Default,
		})
	}
	return ok
}

func (this *Loader) addIssue(path string, line int, msg string) {
	if line > 0 {
		this.issues = append(this.issues, fmt.Sprintf("%s:%d: %s", path, line, msg))
	} else {
		this.issues = append(this.issues, fmt.Sprintf("%s: %s", path, msg))
	}
}

func lastSegment(path string) string {
	pos := strings.LastIndex(path, "::")
	if pos == -1 {
		return path
	}
	return path[pos+2:]
}
