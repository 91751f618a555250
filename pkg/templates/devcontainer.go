package templates

import (
	"github.com/goliatone/go-adaptergen/pkg/answers"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
)

func (s *Set) devcontainerDockerfile(a answers.Answers) (string, error) {
	if !a.HasTool(answers.ToolDevcontainer) {
		return scaffold.Skip()
	}
	return s.render(DevcontainerDockerfile, nil)
}
