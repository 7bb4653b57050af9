package assistant

import (
	"net/http"

	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleChat always answers 200 with some reply text: model failures are
// absorbed into a canned Arabic apology so the chat widget never breaks.
func (arm *AssistantRoutesManager) HandleChat(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ChatRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	reply := arm.assistantService.Advise(r.Context(), body.Message)

	gecho.Success(w,
		gecho.WithData(map[string]string{"reply": reply}),
		gecho.Send(),
	)
}
