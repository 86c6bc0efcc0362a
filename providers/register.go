package providers

import (
	"github.com/termfx/morfx/providers/bash"
	"github.com/termfx/morfx/providers/c"
	"github.com/termfx/morfx/providers/cpp"
	"github.com/termfx/morfx/providers/csharp"
	"github.com/termfx/morfx/providers/css"
	"github.com/termfx/morfx/providers/golang"
	"github.com/termfx/morfx/providers/html"
	"github.com/termfx/morfx/providers/java"
	"github.com/termfx/morfx/providers/javascript"
	"github.com/termfx/morfx/providers/kotlin"
	"github.com/termfx/morfx/providers/lua"
	"github.com/termfx/morfx/providers/php"
	"github.com/termfx/morfx/providers/python"
	"github.com/termfx/morfx/providers/ruby"
	"github.com/termfx/morfx/providers/rust"
	"github.com/termfx/morfx/providers/scala"
	"github.com/termfx/morfx/providers/swift"
	"github.com/termfx/morfx/providers/toml"
	"github.com/termfx/morfx/providers/typescript"
	"github.com/termfx/morfx/providers/yaml"
)

// RegisterDefaults populates reg with every adapter this module ships.
// Adapter construction is lazy (Registry.Register only stores a
// factory), so calling this is cheap even though the list is long.
func RegisterDefaults(reg *Registry) {
	reg.Register("go", []string{"golang"}, []string{".go"}, func() Adapter { return golang.New() })
	reg.Register("python", []string{"py"}, []string{".py", ".pyw", ".pyi"}, func() Adapter { return python.New() })
	reg.Register("javascript", []string{"js", "jsx"}, []string{".js", ".jsx", ".mjs", ".cjs"}, func() Adapter { return javascript.New() })
	reg.Register("typescript", []string{"ts"}, []string{".ts", ".mts", ".cts"}, func() Adapter { return typescript.New() })
	reg.Register("tsx", nil, []string{".tsx"}, func() Adapter { return typescript.NewTSX() })
	reg.Register("php", nil, []string{".php", ".phtml"}, func() Adapter { return php.New() })
	reg.Register("c", nil, []string{".c", ".h"}, func() Adapter { return c.New() })
	reg.Register("cpp", []string{"c++", "cxx"}, []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"}, func() Adapter { return cpp.New() })
	reg.Register("java", nil, []string{".java"}, func() Adapter { return java.New() })
	reg.Register("rust", nil, []string{".rs"}, func() Adapter { return rust.New() })
	reg.Register("ruby", []string{"rb"}, []string{".rb", ".rake", ".gemspec"}, func() Adapter { return ruby.New() })
	reg.Register("csharp", []string{"cs", "c#"}, []string{".cs"}, func() Adapter { return csharp.New() })
	reg.Register("kotlin", []string{"kt"}, []string{".kt", ".kts"}, func() Adapter { return kotlin.New() })
	reg.Register("swift", nil, []string{".swift"}, func() Adapter { return swift.New() })
	reg.Register("bash", []string{"sh", "shell"}, []string{".sh", ".bash"}, func() Adapter { return bash.New() })
	reg.Register("html", nil, []string{".html", ".htm"}, func() Adapter { return html.New() })
	reg.Register("css", nil, []string{".css"}, func() Adapter { return css.New() })
	reg.Register("yaml", []string{"yml"}, []string{".yaml", ".yml"}, func() Adapter { return yaml.New() })
	reg.Register("toml", nil, []string{".toml"}, func() Adapter { return toml.New() })
	reg.Register("lua", nil, []string{".lua"}, func() Adapter { return lua.New() })
	reg.Register("scala", nil, []string{".scala", ".sc"}, func() Adapter { return scala.New() })
}

func init() {
	RegisterDefaults(Default)
}
