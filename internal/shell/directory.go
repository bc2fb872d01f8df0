package shell

// 宿主路由必须支持的路径。
const (
	PathHome     = "/"
	PathBlog     = "/blog"
	PathProjects = "/#projects"
	PathWork     = "/#work"
)

// ParentDir 是 cd 返回上一页的目标名。
const ParentDir = ".."

// Directory 是 cd 可以进入的站点分区。
type Directory struct {
	Name    string
	Aliases []string
	Path    string
	Label   string
}

var directories = []Directory{
	{Name: "home", Aliases: []string{"~", "/"}, Path: PathHome, Label: "home"},
	{Name: "blog", Path: PathBlog, Label: "blog"},
	{Name: "projects", Path: PathProjects, Label: "projects"},
	{Name: "work", Path: PathWork, Label: "work experience"},
}

// Directories 返回全部分区，顺序与 ls 一致。
func Directories() []Directory {
	return append([]Directory(nil), directories...)
}

// LookupDirectory 按名称或别名查找分区。
func LookupDirectory(name string) (Directory, bool) {
	for _, d := range directories {
		if d.Name == name {
			return d, true
		}
		for _, alias := range d.Aliases {
			if alias == name {
				return d, true
			}
		}
	}
	return Directory{}, false
}

func directoryNames() []string {
	out := make([]string, 0, len(directories)+1)
	for _, d := range directories {
		out = append(out, d.Name)
	}
	return append(out, ParentDir)
}
