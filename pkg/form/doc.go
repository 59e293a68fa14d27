// Package form validates the signup form: name, email, phone, date of birth,
// website, password, password confirmation and terms acceptance.
//
// It has two layers. Evaluate is a pure function from a field, its raw value
// and an EvalContext to a Result; it touches no presentation and reads no
// clock except through EvalContext. The Controller owns the per-field State,
// runs Evaluate when the host reports an interaction, and pushes the outcome
// to the host through the FieldHandle and StrengthIndicator capabilities it
// was constructed with.
//
//	ctrl, err := form.New(form.Bindings{
//		Fields:   handles, // one FieldHandle per form.Fields()
//		Strength: bar,
//		Notifier: toast,
//	}, form.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	ctrl.Trigger(ctx, form.TriggerEvent{Field: form.Email, Kind: form.EventBlur})
//	ctrl.OnPasswordChanged(ctx, "Abcdef1!")
//	if ctrl.OnSubmitAttempt(ctx) {
//		// accepted: notification sent, form reset
//	}
//
// A submission is accepted only when every field passes on that attempt.
// Fields never evaluated count as not valid for OverallValid.
//
// ComputeStrength scores a password from 0 to 5 for the strength bar. The
// score is independent of the Password rule.
package form
