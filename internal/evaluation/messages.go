package evaluation

// User-facing notification text.
const (
	TitleError        = "오류"
	TitleInputError   = "입력 오류"
	TitleThanks       = "감사합니다"
	MessageLoadFailed = "프로젝트 데이터를 불러오는 중 오류가 발생했습니다: "
	MessageSubmitFail = "평가 제출 중 오류가 발생했습니다: "
	MessageIncomplete = "모든 항목에 대해 평가해주세요."
	MessageSubmitted  = "평가가 완료되었습니다"
	MessageUnknown    = "알 수 없는 오류"
)
