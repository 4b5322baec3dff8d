package types

// QualityLevel 渲染质量档位
// 对应配置文件 data/quality.yaml 中的档位名称，可由用户设置切换
type QualityLevel string

const (
	QualityLow    QualityLevel = "low"
	QualityMedium QualityLevel = "medium"
	QualityHigh   QualityLevel = "high"
)

// ParseQualityLevel 解析质量档位字符串
// 未知值返回 QualityMedium 和 false
func ParseQualityLevel(s string) (QualityLevel, bool) {
	switch QualityLevel(s) {
	case QualityLow, QualityMedium, QualityHigh:
		return QualityLevel(s), true
	default:
		return QualityMedium, false
	}
}
