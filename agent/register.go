package agent

import maa "github.com/MaaXYZ/maa-framework-go/v3"

var (
	_ maa.CustomActionRunner = (*SolveAction)(nil)
	_ maa.CustomActionRunner = (*RenderAction)(nil)
)

// Register 注册拼图重建相关的自定义动作。
func Register() {
	maa.AgentServerRegisterCustomAction("MosaicSolve", &SolveAction{})
	maa.AgentServerRegisterCustomAction("MosaicRender", &RenderAction{})
}
