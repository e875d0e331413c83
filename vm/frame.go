package vm

// frame is one pending subroutine call.
type frame struct {
	returnAddr int   // position execution resumes at on return
	callSiteIP int   // position of the CALL instruction
	label      int64 // label that was called
}
